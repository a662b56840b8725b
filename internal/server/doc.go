// Package server implements the MCP (Model Context Protocol) server for maze tools.
//
// This package provides a JSON-RPC 2.0 server that exposes maze decoding,
// solving and rendering through the MCP protocol.
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
//   - maze_load: Decode and validate a maze image
//   - maze_solve: Solve a maze and return the route
//   - maze_render: Paint the route over the image with a gradient
//   - maze_trace: Render the solver's working grid in the debug palette
//   - maze_inspect_cell: Get the color and cell kind at a pixel
//   - maze_gradients: List gradient presets
//
// Every tool that takes a path decodes and solves the maze on each call; only
// the decoded image is cached, keyed by path, for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// An unsolvable maze is reported by maze_solve as solved=false; maze_render
// treats it as an error.
//
// # Usage
//
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
