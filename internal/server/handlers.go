package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "color_mix").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Algebra
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_mix":
		return s.handleColorMix(args)
	case "color_equivalent":
		return s.handleColorEquivalent(args)
	case "color_css":
		return s.handleColorCSS(args)

	// Image Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Rendering Operations
	case "palette_render":
		return s.handlePaletteRender(args)
	case "gradient_render":
		return s.handleGradientRender(args)
	case "image_adjust_hsl":
		return s.handleImageAdjustHSL(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color Argument Decoding ===

// hslArg is an HSL color in degree/percent units, as tool callers write it.
type hslArg struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// colorArg accepts a color as either a hex string or an HSL object.
// Exactly one of the two must be present.
type colorArg struct {
	Hex string  `json:"hex,omitempty"`
	HSL *hslArg `json:"hsl,omitempty"`
}

// decode resolves the argument to a concrete color value: RGB for hex
// input, HSL for hsl input. The dynamic type is coerced at the point of
// use, so a future argument form only needs a Color implementation.
func (a colorArg) decode() (any, error) {
	switch {
	case a.Hex != "" && a.HSL != nil:
		return nil, fmt.Errorf("color accepts either hex or hsl, not both")
	case a.Hex != "":
		rgb, err := color.ParseHex(a.Hex)
		if err != nil {
			return nil, err
		}
		return rgb, nil
	case a.HSL != nil:
		return color.New(a.HSL.Hue, a.HSL.Saturation, a.HSL.Lightness), nil
	default:
		return nil, fmt.Errorf("color requires either a hex string or an hsl object")
	}
}

// toHSL decodes the argument and coerces it to HSL.
func (a colorArg) toHSL() (color.HSL, error) {
	v, err := a.decode()
	if err != nil {
		return color.HSL{}, err
	}
	return color.Coerce(v)
}

// parseMode resolves an optional mode argument, defaulting to Foley.
func parseMode(name string) (color.Mode, error) {
	if name == "" {
		return color.Foley, nil
	}
	return color.ParseMode(name)
}

// === Color Algebra Handlers ===

type colorConvertArgs struct {
	Color colorArg `json:"color"`
	Mode  string   `json:"mode"`
}

type colorConvertResult struct {
	Mode  string              `json:"mode"`
	Color imaging.ColorResult `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := parseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	hsl, err := a.Color.toHSL()
	if err != nil {
		return nil, err
	}
	result, err := imaging.DescribeHSL(hsl, mode)
	if err != nil {
		return nil, err
	}
	return &colorConvertResult{Mode: mode.String(), Color: result}, nil
}

type colorMixArgs struct {
	A     colorArg `json:"a"`
	B     colorArg `json:"b"`
	Ratio *float64 `json:"ratio,omitempty"`
	Mode  string   `json:"mode"`
}

type colorMixResult struct {
	Ratio float64             `json:"ratio"`
	Mode  string              `json:"mode"`
	Mixed imaging.ColorResult `json:"mixed"`
}

func (s *Server) handleColorMix(args json.RawMessage) (interface{}, error) {
	var a colorMixArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ratio := 0.5
	if a.Ratio != nil {
		ratio = *a.Ratio
	}
	mode, err := parseMode(a.Mode)
	if err != nil {
		return nil, err
	}

	first, err := a.A.toHSL()
	if err != nil {
		return nil, fmt.Errorf("color a: %w", err)
	}
	secondValue, err := a.B.decode()
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}
	second, err := color.Coerce(secondValue)
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}

	result, err := imaging.DescribeHSL(first.Mix(second, ratio), mode)
	if err != nil {
		return nil, err
	}
	return &colorMixResult{Ratio: ratio, Mode: mode.String(), Mixed: result}, nil
}

type colorEquivalentArgs struct {
	A colorArg `json:"a"`
	B colorArg `json:"b"`
}

type colorEquivalentResult struct {
	Equivalent bool    `json:"equivalent"`
	Tolerance  float64 `json:"tolerance"`
}

func (s *Server) handleColorEquivalent(args json.RawMessage) (interface{}, error) {
	var a colorEquivalentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	first, err := a.A.toHSL()
	if err != nil {
		return nil, fmt.Errorf("color a: %w", err)
	}
	second, err := a.B.toHSL()
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}
	return &colorEquivalentResult{
		Equivalent: first.Equivalent(second),
		Tolerance:  color.Tolerance,
	}, nil
}

type colorCSSArgs struct {
	Color colorArg `json:"color"`
}

type colorCSSResult struct {
	CSSHSL  string `json:"css_hsl"`
	CSSHSLA string `json:"css_hsla"`
	CSSRGB  string `json:"css_rgb"`
	CSSRGBA string `json:"css_rgba"`
	HTML    string `json:"html"`
}

func (s *Server) handleColorCSS(args json.RawMessage) (interface{}, error) {
	var a colorCSSArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hsl, err := a.Color.toHSL()
	if err != nil {
		return nil, err
	}
	return &colorCSSResult{
		CSSHSL:  hsl.CSSHSL(),
		CSSHSLA: hsl.CSSHSLA(),
		CSSRGB:  hsl.CSSRGB(),
		CSSRGBA: hsl.CSSRGBA(),
		HTML:    hsl.HTML(),
	}, nil
}

// === Image Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

// === Rendering Operation Handlers ===

type paletteRenderArgs struct {
	Stops  []colorArg `json:"stops"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

func (s *Server) handlePaletteRender(args json.RawMessage) (interface{}, error) {
	var a paletteRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 320
	}
	if a.Height == 0 {
		a.Height = 64
	}

	stops := make([]color.HSL, len(a.Stops))
	for i, stop := range a.Stops {
		hsl, err := stop.toHSL()
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = hsl
	}
	return imaging.RenderSwatch(stops, a.Width, a.Height)
}

type gradientRenderArgs struct {
	From   colorArg `json:"from"`
	To     colorArg `json:"to"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Mode   string   `json:"mode"`
}

func (s *Server) handleGradientRender(args json.RawMessage) (interface{}, error) {
	var a gradientRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 256
	}
	if a.Height == 0 {
		a.Height = 32
	}
	mode, err := parseMode(a.Mode)
	if err != nil {
		return nil, err
	}

	from, err := a.From.toHSL()
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := a.To.toHSL()
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	return imaging.RenderGradient(from, to, a.Width, a.Height, mode)
}

type imageAdjustHSLArgs struct {
	Path            string  `json:"path"`
	HueShift        int     `json:"hue_shift"`
	SaturationDelta float64 `json:"saturation_delta"`
	LightnessDelta  float64 `json:"lightness_delta"`
}

func (s *Server) handleImageAdjustHSL(args json.RawMessage) (interface{}, error) {
	var a imageAdjustHSLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AdjustHSL(img, a.HueShift, a.SaturationDelta, a.LightnessDelta)
}
