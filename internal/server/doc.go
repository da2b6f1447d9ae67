// Package server implements the MCP (Model Context Protocol) server for the
// color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion,
// color algebra and image color analysis through the MCP protocol, for use
// with Claude and other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Algebra:
//   - color_convert: HSL to RGB through a selectable formula
//   - color_mix: Linear HSL interpolation between two colors
//   - color_equivalent: Tolerance-based color equality
//   - color_css: CSS string renderings of a color
//
// Image Color Operations:
//   - image_sample_color: Color at a pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract a ranked palette
//
// Rendering Operations:
//   - palette_render: Swatch strip PNG from color stops
//   - gradient_render: Two-color HSL gradient PNG
//   - image_adjust_hsl: Whole-image hue/saturation/lightness shift
//
// # Color Arguments
//
// Tools accepting colors take either form:
//
//	{"hex": "#59a679"}
//	{"hsl": {"hue": 145, "saturation": 30, "lightness": 50}}
//
// Tools accepting a conversion mode take "foley" (default), "foley_alt"
// or "wikipedia"; an unknown mode name fails the call rather than
// falling back.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images, keyed by
// path, which persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
