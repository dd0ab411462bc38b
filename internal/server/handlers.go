package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/samber/lo"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/log"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_palette").
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
// Params or arguments that do not decode return -32602. Every other tool
// error returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log.Debugf("tool call %s", params.Name)

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var argErr *invalidArgsError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses color arguments with colormath.Parse
//  3. Loads images from cache as needed
//  4. Calls the appropriate colormath/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Parsing and Generation
	case "color_parse":
		return s.handleColorParse(args)
	case "color_random":
		return s.handleColorRandom(args)
	case "color_hex_to_decimal":
		return s.handleColorHexToDecimal(args)

	// Blending
	case "color_mix":
		return s.handleColorMix(args)
	case "color_lerp":
		return s.handleColorLerp(args)

	// Brightness Adjustment
	case "color_darker":
		return s.handleColorDelta(args, colormath.Darker)
	case "color_lighter":
		return s.handleColorDelta(args, colormath.Lighter)
	case "color_brightness":
		return s.handleColorBrightness(args)
	case "color_lighten":
		return s.handleColorPercent(args, colormath.LightenBy)
	case "color_darken":
		return s.handleColorPercent(args, colormath.DarkenBy)
	case "color_invert":
		return s.handleColorInvert(args)
	case "color_text":
		return s.handleColorText(args)

	// Image Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_color":
		return s.handleImageDominantColor(args)
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

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

// invalidArgsError marks tool arguments that could not be decoded.
type invalidArgsError struct {
	err error
}

func (e *invalidArgsError) Error() string { return "invalid arguments: " + e.err.Error() }
func (e *invalidArgsError) Unwrap() error { return e.err }

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return &invalidArgsError{err: err}
	}
	return nil
}

// parseColorArg parses a color argument, naming the argument in the error.
func parseColorArg(field, text string) (colormath.Color, error) {
	c, err := colormath.Parse(text)
	if err != nil {
		return colormath.Empty, fmt.Errorf("invalid %s: %w", field, err)
	}
	return c, nil
}

// describe returns the Info for c as a pointer, matching the imaging results.
func describe(c colormath.Color) *colormath.Info {
	info := colormath.Describe(c)
	return &info
}

// === Parsing and Generation Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

func (s *Server) handleColorRandom(args json.RawMessage) (interface{}, error) {
	return describe(colormath.Random(s.rng)), nil
}

type hexToDecimalArgs struct {
	Hex string `json:"hex"`
}

// HexToDecimalResult is the result of color_hex_to_decimal.
type HexToDecimalResult struct {
	Hex     string `json:"hex"`
	Decimal int32  `json:"decimal"`
}

func (s *Server) handleColorHexToDecimal(args json.RawMessage) (interface{}, error) {
	var a hexToDecimalArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	v, err := colormath.HexToDecimal(a.Hex)
	if err != nil {
		return nil, err
	}
	return &HexToDecimalResult{Hex: a.Hex, Decimal: v}, nil
}

// === Blending Handlers ===

type colorMixArgs struct {
	Colors []string `json:"colors"`
}

func (s *Server) handleColorMix(args json.RawMessage) (interface{}, error) {
	var a colorMixArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	colors := make([]colormath.Color, 0, len(a.Colors))
	for i, text := range a.Colors {
		if text == "" {
			colors = append(colors, colormath.Empty)
			continue
		}
		c, err := parseColorArg(fmt.Sprintf("colors[%d]", i), text)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return describe(colormath.Mix(colors...)), nil
}

type colorLerpArgs struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleColorLerp(args json.RawMessage) (interface{}, error) {
	var a colorLerpArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	from, err := parseColorArg("from", a.From)
	if err != nil {
		return nil, err
	}
	to, err := parseColorArg("to", a.To)
	if err != nil {
		return nil, err
	}
	return describe(colormath.Lerp(from, to, a.Amount)), nil
}

// === Brightness Adjustment Handlers ===

type colorDeltaArgs struct {
	Color string `json:"color"`
	Delta int    `json:"delta"`
}

func (s *Server) handleColorDelta(args json.RawMessage, adjust func(colormath.Color, uint8) colormath.Color) (interface{}, error) {
	var a colorDeltaArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Delta < 0 || a.Delta > 255 {
		return nil, fmt.Errorf("delta must be between 0 and 255, got %d", a.Delta)
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return describe(adjust(c, uint8(a.Delta))), nil
}

type colorBrightnessArgs struct {
	Color  string  `json:"color"`
	Factor float64 `json:"factor"`
}

func (s *Server) handleColorBrightness(args json.RawMessage) (interface{}, error) {
	var a colorBrightnessArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return describe(colormath.ChangeBrightness(c, a.Factor)), nil
}

type colorPercentArgs struct {
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

func (s *Server) handleColorPercent(args json.RawMessage, adjust func(colormath.Color, int) colormath.Color) (interface{}, error) {
	var a colorPercentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return describe(adjust(c, a.Percent)), nil
}

func (s *Server) handleColorInvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return describe(colormath.Invert(c)), nil
}

// TextColorResult is the result of color_text.
type TextColorResult struct {
	Background colormath.Info `json:"background"`
	Text       colormath.Info `json:"text"`
	Threshold  int            `json:"threshold"`
}

func (s *Server) handleColorText(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg("color", a.Color)
	if err != nil {
		return nil, err
	}
	return &TextColorResult{
		Background: colormath.Describe(c),
		Text:       colormath.Describe(colormath.VisibleTextColor(c)),
		Threshold:  colormath.VisibleTextThreshold,
	}, nil
}

// === Image Operation Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type samplePoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

type imageSampleColorsMultiArgs struct {
	Path   string        `json:"path"`
	Points []samplePoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := lo.Map(a.Points, func(p samplePoint, _ int) imaging.LabeledPoint {
		return imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	})
	return imaging.SampleColorsMulti(img, points)
}

type imageRegionArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
	Area   string          `json:"area,omitempty"`
}

// resolveRegion picks the explicit region or the named area, if either was given.
func (a imageRegionArgs) resolveRegion(img image.Image) (*imaging.Region, error) {
	switch {
	case a.Region != nil && a.Area != "":
		return nil, fmt.Errorf("region and area cannot both be set")
	case a.Area != "":
		return imaging.NamedRegion(img.Bounds(), a.Area)
	default:
		return a.Region, nil
	}
}

func (s *Server) handleImageDominantColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := a.resolveRegion(img)
	if err != nil {
		return nil, err
	}
	return imaging.MeanColor(img, region)
}

type imagePaletteArgs struct {
	imageRegionArgs
	Count int `json:"count"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = s.paletteCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := a.resolveRegion(img)
	if err != nil {
		return nil, err
	}
	return imaging.Palette(img, a.Count, region)
}

type imageCompareRegionsArgs struct {
	Path    string         `json:"path"`
	Region1 imaging.Region `json:"region1"`
	Region2 imaging.Region `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1, a.Region2)
}
