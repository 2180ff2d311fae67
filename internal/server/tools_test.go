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
		"relight_load",
		"relight_info",
		"relight_param_key",
		"relight_render",
		"relight_render_to_file",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(toolMap) != len(tools) {
		t.Error("duplicate tool names")
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing 'properties'")
			}

			// every required field must be declared
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %q not in properties", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RenderRequiresParams(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "relight_render" && tool.Name != "relight_render_to_file" {
			continue
		}
		required, _ := tool.InputSchema["required"].([]string)
		found := false
		for _, r := range required {
			if r == "params" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s should require params", tool.Name)
		}
	}
}
