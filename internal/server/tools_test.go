package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_parse",
		"color_random",
		"color_hex_to_decimal",
		"color_mix",
		"color_lerp",
		"color_darker",
		"color_lighter",
		"color_brightness",
		"color_lighten",
		"color_darken",
		"color_invert",
		"color_text",
		"image_load",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_dominant_color",
		"image_palette",
		"image_compare_regions",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	toolsRequiringPath := []string{
		"image_load",
		"image_sample_color",
		"image_sample_colors_multi",
		"image_dominant_color",
		"image_palette",
		"image_compare_regions",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			continue // Skip if tool not found
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func findTool(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("%s tool not found", name)
	return Tool{}
}

func TestToolDefinitions_ColorArguments(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"color_parse", []string{"color"}},
		{"color_lerp", []string{"from", "to", "amount"}},
		{"color_darker", []string{"color", "delta"}},
		{"color_lighter", []string{"color", "delta"}},
		{"color_brightness", []string{"color", "factor"}},
		{"color_lighten", []string{"color", "percent"}},
		{"color_darken", []string{"color", "percent"}},
		{"color_invert", []string{"color"}},
		{"color_text", []string{"color"}},
		{"color_hex_to_decimal", []string{"hex"}},
		{"color_mix", []string{"colors"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool := findTool(t, tt.tool)

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("required should be a string slice")
			}
			if len(required) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", required, tt.required)
			}
			for i := range required {
				if required[i] != tt.required[i] {
					t.Errorf("required[%d]: got %s, want %s", i, required[i], tt.required[i])
				}
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, name := range tt.required {
				if _, ok := props[name]; !ok {
					t.Errorf("property %s missing", name)
				}
			}
		})
	}
}

func TestToolDefinitions_AreaEnum(t *testing.T) {
	for _, name := range []string{"image_dominant_color", "image_palette"} {
		t.Run(name, func(t *testing.T) {
			props, ok := findTool(t, name).InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}

			if _, ok := props["region"].(map[string]interface{}); !ok {
				t.Error("region property should exist and be a map")
			}

			areaProp, ok := props["area"].(map[string]interface{})
			if !ok {
				t.Fatal("area property should exist and be a map")
			}

			enum, ok := areaProp["enum"].([]string)
			if !ok {
				t.Fatal("area should have enum")
			}

			expectedAreas := []string{
				"top-left", "top-right", "bottom-left", "bottom-right",
				"top-half", "bottom-half", "left-half", "right-half", "center",
			}

			enumMap := make(map[string]bool)
			for _, e := range enum {
				enumMap[e] = true
			}

			for _, area := range expectedAreas {
				if !enumMap[area] {
					t.Errorf("Expected area '%s' not in enum", area)
				}
			}
		})
	}
}

func TestToolDefinitions_PaletteCountDefault(t *testing.T) {
	props := findTool(t, "image_palette").InputSchema["properties"].(map[string]interface{})

	count, ok := props["count"].(map[string]interface{})
	if !ok {
		t.Fatal("count parameter not found or not a map")
	}
	if count["default"] != DefaultPaletteCount {
		t.Errorf("count default: got %v, want %d", count["default"], DefaultPaletteCount)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
