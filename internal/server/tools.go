package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorTextHelp describes the text encodings every color argument accepts.
const colorTextHelp = `Color as "#RRGGBB", "#AARRGGBB", "r,g,b", "r,g,b,a" or a CSS color name`

func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ". " + colorTextHelp,
	}
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var regionProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional rectangular region; x1,y1 inclusive, x2,y2 exclusive",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

var areaProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
	"description": "Optional named area; cannot be combined with region",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Parsing and Generation
		{
			Name:        "color_parse",
			Description: "Parse a color from hex, comma-separated or named form and describe it (hex, channels, perceived brightness, luminosity, readable text color).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to parse"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_random",
			Description: "Generate a random opaque color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "color_hex_to_decimal",
			Description: "Convert a base-16 string (optional 0x prefix) to a signed 32-bit integer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex digits, e.g. \"FF\" or \"0x7FFFFFFF\"",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Blending
		{
			Name:        "color_mix",
			Description: "Average several colors channel by channel (alpha included). Empty strings are skipped; mixing nothing returns the empty color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Colors to average. " + colorTextHelp,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "color_lerp",
			Description: "Linearly interpolate RGB between two colors. Amounts outside 0-1 extrapolate; the result is opaque.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": colorProperty("Start color"),
					"to":   colorProperty("End color"),
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "Interpolation amount (0 = from, 1 = to)",
					},
				},
				"required": []string{"from", "to", "amount"},
			},
		},

		// Brightness Adjustment
		{
			Name:        "color_darker",
			Description: "Subtract a fixed amount from each RGB channel, stopping at 0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to darken"),
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Amount to subtract (0-255)",
					},
				},
				"required": []string{"color", "delta"},
			},
		},
		{
			Name:        "color_lighter",
			Description: "Add a fixed amount to each RGB channel, stopping at 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to lighten"),
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Amount to add (0-255)",
					},
				},
				"required": []string{"color", "delta"},
			},
		},
		{
			Name:        "color_brightness",
			Description: "Scale a color toward black (negative factor) or white (positive factor). Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to adjust"),
					"factor": map[string]interface{}{
						"type":        "number",
						"description": "Correction factor from -1 (black) to 1 (white)",
					},
				},
				"required": []string{"color", "factor"},
			},
		},
		{
			Name:        "color_lighten",
			Description: "Move a color toward white by a percentage.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to lighten"),
					"percent": map[string]interface{}{
						"type":        "integer",
						"description": "Percentage (0-100)",
					},
				},
				"required": []string{"color", "percent"},
			},
		},
		{
			Name:        "color_darken",
			Description: "Move a color toward black by a percentage.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to darken"),
					"percent": map[string]interface{}{
						"type":        "integer",
						"description": "Percentage (0-100)",
					},
				},
				"required": []string{"color", "percent"},
			},
		},
		{
			Name:        "color_invert",
			Description: "Invert the RGB channels of a color. Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color to invert"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_text",
			Description: "Pick black or white text for readability on a background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Background color"),
				},
				"required": []string{"color"},
			},
		},

		// Image Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
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
			Description: "Sample colors at multiple points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample, each with optional label",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_color",
			Description: "Average RGB over every pixel of the image or a region. This is the mean color, not the most frequent one (see image_palette).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionProperty,
					"area":   areaProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_palette",
			Description: "List the most frequent colors (quantized to steps of 16) in the image or a region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Defaults to the configured palette count",
						"default":     DefaultPaletteCount,
					},
					"region": regionProperty,
					"area":   areaProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare two regions pixel by pixel and by mean color. Reports similarity, average channel difference, brightness difference and CIEDE2000 distance of the region means.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty,
					"region1": regionProperty,
					"region2": regionProperty,
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
