package server

import (
	"encoding/json"
	"testing"
)

var expectedTools = []string{
	"maze_load",
	"maze_solve",
	"maze_render",
	"maze_trace",
	"maze_inspect_cell",
	"maze_gradients",
}

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) != len(expectedTools) {
		t.Fatalf("GetToolDefinitions: got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}

			// Every schema must survive the wire.
			if _, err := json.Marshal(tool); err != nil {
				t.Errorf("marshal: %v", err)
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"maze_load", []string{"path"}},
		{"maze_solve", []string{"path"}},
		{"maze_render", []string{"path"}},
		{"maze_trace", []string{"path"}},
		{"maze_inspect_cell", []string{"path", "x", "y"}},
		{"maze_gradients", nil},
	}

	toolMap := toolsByName()
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			if !ok {
				t.Fatalf("tool %s not found", tt.tool)
			}

			got, _ := tool.InputSchema["required"].([]string)
			if len(got) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", got, tt.required)
			}
			for i := range got {
				if got[i] != tt.required[i] {
					t.Errorf("required[%d]: got %s, want %s", i, got[i], tt.required[i])
				}
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, r := range tt.required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property schema", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RenderGradientKinds(t *testing.T) {
	tool := toolsByName()["maze_render"]
	props := tool.InputSchema["properties"].(map[string]interface{})

	kind, ok := props["kind"].(map[string]interface{})
	if !ok {
		t.Fatal("maze_render should have a kind parameter")
	}
	enum, ok := kind["enum"].([]string)
	if !ok {
		t.Fatal("kind enum should be a string slice")
	}

	want := map[string]bool{"linear": true, "alternating": true, "lab": true}
	for _, k := range enum {
		delete(want, k)
	}
	for missing := range want {
		t.Errorf("kind enum missing %s", missing)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
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

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	if len(toolsList) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expectedTools))
	}
}
