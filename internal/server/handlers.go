package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_load", "maze_render").
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
		s.debugf("tool %s failed: %v", params.Name, err)
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
	case "maze_load":
		return s.handleMazeLoad(args)
	case "maze_solve":
		return s.handleMazeSolve(args)
	case "maze_render":
		return s.handleMazeRender(args)
	case "maze_trace":
		return s.handleMazeTrace(args)
	case "maze_inspect_cell":
		return s.handleMazeInspectCell(args)
	case "maze_gradients":
		return s.handleMazeGradients(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating a missing payload as "{}".
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

type mazePathArgs struct {
	Path string `json:"path"`
}

// LoadResult describes a decoded maze.
type LoadResult struct {
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Format        string     `json:"format"`
	FileSizeBytes int64      `json:"file_size_bytes"`
	Start         Point      `json:"start"`
	End           Point      `json:"end"`
	Cells         maze.Stats `json:"cells"`
}

func (s *Server) handleMazeLoad(args json.RawMessage) (interface{}, error) {
	var a mazePathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	grid, err := maze.Build(img)
	if err != nil {
		return nil, fmt.Errorf("failed to decode maze %s: %w", a.Path, err)
	}

	return &LoadResult{
		Width:         grid.Width(),
		Height:        grid.Height(),
		Format:        info.Format,
		FileSizeBytes: info.FileSizeBytes,
		Start:         toPoint(grid.Start()),
		End:           toPoint(grid.End()),
		Cells:         grid.Stats(),
	}, nil
}

type mazeSolveArgs struct {
	Path        string `json:"path"`
	IncludeGrid bool   `json:"include_grid"`
}

// SolveResult reports the outcome of a search.
type SolveResult struct {
	Solved     bool    `json:"solved"`
	PathLength int     `json:"path_length"`
	Steps      int     `json:"steps"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
	Path       []Point `json:"path"`
	Grid       string  `json:"grid,omitempty"`
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	m, err := s.openMaze(a.Path)
	if err != nil {
		return nil, err
	}

	result := &SolveResult{
		Solved:     m.sol.Solved,
		PathLength: len(m.sol.Path),
		Steps:      m.sol.Steps,
		Start:      toPoint(m.grid.Start()),
		End:        toPoint(m.grid.End()),
		Path:       toPoints(m.sol.Path),
	}
	if a.IncludeGrid {
		result.Grid = m.finder.Grid().String()
	}
	return result, nil
}

type mazeRenderArgs struct {
	Path       string `json:"path"`
	Gradient   string `json:"gradient"`
	Kind       string `json:"kind"`
	From       string `json:"from"`
	To         string `json:"to"`
	Scale      int    `json:"scale"`
	OutputPath string `json:"output_path"`
}

// RenderResult contains the rendered maze as base64 PNG.
type RenderResult struct {
	imaging.EncodedImage
	Gradient   string `json:"gradient"`
	PathLength int    `json:"path_length"`
	Scale      int    `json:"scale"`
	OutputPath string `json:"output_path,omitempty"`
}

func (s *Server) handleMazeRender(args json.RawMessage) (interface{}, error) {
	var a mazeRenderArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	scale, err := s.previewScale(a.Scale)
	if err != nil {
		return nil, err
	}
	g, label, err := s.resolveGradient(gradientChoice{Name: a.Gradient, Kind: a.Kind, From: a.From, To: a.To})
	if err != nil {
		return nil, err
	}

	m, err := s.openMaze(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := m.render(g)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.Save(a.OutputPath, out); err != nil {
			return nil, err
		}
	}

	encoded, err := imaging.EncodePNG(imaging.Upscale(out, scale))
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		EncodedImage: *encoded,
		Gradient:     label,
		PathLength:   len(m.sol.Path),
		Scale:        scale,
		OutputPath:   a.OutputPath,
	}, nil
}

type mazeTraceArgs struct {
	Path  string `json:"path"`
	Scale int    `json:"scale"`
}

// TraceResult contains the debug palette image of the solver's working grid.
type TraceResult struct {
	imaging.EncodedImage
	Solved bool `json:"solved"`
	Scale  int  `json:"scale"`
}

func (s *Server) handleMazeTrace(args json.RawMessage) (interface{}, error) {
	var a mazeTraceArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	scale, err := s.previewScale(a.Scale)
	if err != nil {
		return nil, err
	}
	m, err := s.openMaze(a.Path)
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.EncodePNG(imaging.Upscale(m.finder.Grid().Image(), scale))
	if err != nil {
		return nil, err
	}
	return &TraceResult{
		EncodedImage: *encoded,
		Solved:       m.sol.Solved,
		Scale:        scale,
	}, nil
}

type mazeInspectCellArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// InspectResult describes a single pixel of a maze image.
type InspectResult struct {
	X     int                 `json:"x"`
	Y     int                 `json:"y"`
	Color imaging.ColorResult `json:"color"`
	Valid bool                `json:"valid"`
	Cell  string              `json:"cell,omitempty"`
}

func (s *Server) handleMazeInspectCell(args json.RawMessage) (interface{}, error) {
	var a mazeInspectCellArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	sample, err := imaging.SampleColor(img, bounds.Min.X+a.X, bounds.Min.Y+a.Y)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{X: a.X, Y: a.Y, Color: *sample}
	if kind, err := maze.Classify(sample.RGB); err == nil {
		result.Valid = true
		result.Cell = kind.String()
	}
	return result, nil
}

// GradientInfo describes one gradient preset.
type GradientInfo struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	From    string `json:"from"`
	To      string `json:"to"`
	Default bool   `json:"default,omitempty"`
}

// GradientsResult lists the gradient presets.
type GradientsResult struct {
	Gradients []GradientInfo `json:"gradients"`
}

func (s *Server) handleMazeGradients(_ json.RawMessage) (interface{}, error) {
	specs := s.presets.List()
	infos := make([]GradientInfo, len(specs))
	for i, spec := range specs {
		kind := spec.Kind
		if kind == "" {
			kind = imaging.KindLinear
		}
		infos[i] = GradientInfo{
			Name:    spec.Name,
			Kind:    kind,
			From:    spec.From.Hex(),
			To:      spec.To.Hex(),
			Default: spec.Name == s.cfg.DefaultGradient,
		}
	}
	return &GradientsResult{Gradients: infos}, nil
}
