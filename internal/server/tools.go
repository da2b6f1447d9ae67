package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorSchema is the shared schema for a color argument: a hex string
// or an HSL object in degree/percent units.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"hex": map[string]interface{}{
				"type":        "string",
				"description": "Hex color string, e.g. \"#59a679\" (leading # optional)",
			},
			"hsl": map[string]interface{}{
				"type":        "object",
				"description": "HSL color with hue in degrees (0-360) and saturation/lightness in percent (0-100)",
				"properties": map[string]interface{}{
					"hue":        map[string]interface{}{"type": "number"},
					"saturation": map[string]interface{}{"type": "number"},
					"lightness":  map[string]interface{}{"type": "number"},
				},
				"required": []string{"hue", "saturation", "lightness"},
			},
		},
	}
}

// modeSchema describes the optional conversion mode argument.
func modeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"foley", "foley_alt", "wikipedia"},
		"description": "HSL-to-RGB conversion formula. Default \"foley\"",
		"default":     "foley",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Algebra
		{
			Name:        "color_convert",
			Description: "Convert a color to RGB using a selectable conversion formula and return it in hex, RGB-fraction, HSL and CSS forms.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("The color to convert"),
					"mode":  modeSchema(),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_mix",
			Description: "Linearly interpolate between two colors in HSL space. Hue mixes in fraction space (far arc), not around the shorter arc of the circle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color (the mix starts here)"),
					"b": colorSchema("Second color (ratio 1.0 lands here)"),
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Mix position; values outside [0,1] extrapolate. Default 0.5",
						"default":     0.5,
					},
					"mode": modeSchema(),
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_equivalent",
			Description: "Check whether two colors are equal to within the fixed HSL component tolerance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color"),
					"b": colorSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_css",
			Description: "Render a color as CSS strings: hsl(), hsla(), rgb(), rgba() and the HTML hex form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorSchema("The color to render"),
				},
				"required": []string{"color"},
			},
		},

		// Image Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, reported in hex, RGB-fraction, HSL and CSS forms.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple pixel coordinates in one call. Each point may carry an identifying label.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Coordinates to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors from an image or region, ranked by coverage and reported with their HSL form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to analyze; whole image if omitted",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
				"required": []string{"path"},
			},
		},

		// Rendering Operations
		{
			Name:        "palette_render",
			Description: "Render a list of colors as a horizontal swatch strip and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"stops": map[string]interface{}{
						"type":        "array",
						"description": "Colors to render, one cell each, left to right",
						"items":       colorSchema("One swatch color"),
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels. Default 320",
						"default":     320,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels. Default 64",
						"default":     64,
					},
				},
				"required": []string{"stops"},
			},
		},
		{
			Name:        "gradient_render",
			Description: "Render a left-to-right HSL blend between two colors as base64-encoded PNG. Uses the same far-arc hue mixing as color_mix.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": colorSchema("Left edge color"),
					"to":   colorSchema("Right edge color"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels. Default 256",
						"default":     256,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels. Default 32",
						"default":     32,
					},
					"mode": modeSchema(),
				},
				"required": []string{"from", "to"},
			},
		},
		{
			Name:        "image_adjust_hsl",
			Description: "Shift an entire image in HSL terms (hue rotation in degrees, saturation and lightness deltas) and return the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"hue_shift": map[string]interface{}{
						"type":        "integer",
						"description": "Hue rotation in degrees, [-360, 360]",
					},
					"saturation_delta": map[string]interface{}{
						"type":        "number",
						"description": "Saturation change, [-1, 1]. 0 leaves it unchanged",
					},
					"lightness_delta": map[string]interface{}{
						"type":        "number",
						"description": "Lightness change, [-1, 1]. 0 leaves it unchanged",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
