package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads a maze image.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the maze image (PNG recommended; one pixel per cell)",
}

var scaleProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Optional integer upscale factor for the returned PNG (nearest neighbour). Defaults to the server's preview scale",
	"minimum":     1,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "maze_load",
			Description: "Decode and validate a maze image. Black pixels are walls, white are open paths, exactly one red pixel is the start and exactly one green pixel is the end. Returns dimensions, endpoints and cell counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_solve",
			Description: "Solve a maze with depth-first backtracking search (neighbours tried left, right, up, down). Returns whether it is solvable and the cells strictly between start and end in walking order. The route found is not necessarily the shortest.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"include_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return a text dump of the solved grid (W wall, P path, S start, E end, space for the route)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_render",
			Description: "Solve a maze and paint the route over the original image with a color gradient. Returns the result as base64-encoded PNG and optionally saves it. Fails if the maze has no solution.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"gradient": map[string]interface{}{
						"type":        "string",
						"description": "Name of a gradient preset (see maze_gradients). Ignored when from/to are given",
					},
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"linear", "alternating", "lab"},
						"description": "Gradient kind for a custom from/to gradient. Default linear",
					},
					"from": map[string]interface{}{
						"type":        "string",
						"description": "Custom gradient start color, \"#RRGGBB\" or a color name",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"description": "Custom gradient end color, \"#RRGGBB\" or a color name",
					},
					"scale": scaleProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to save the full-resolution rendered image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_trace",
			Description: "Render the solver's working grid in the debug palette: walls black, open cells white, start red, end green and the winning route blue.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty,
					"scale": scaleProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_inspect_cell",
			Description: "Get the exact color at a pixel and the maze cell kind it decodes to.",
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
			Name:        "maze_gradients",
			Description: "List the gradient presets available to maze_render.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
