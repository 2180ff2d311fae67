// Package server implements the MCP (Model Context Protocol) server for layer relighting.
//
// This package provides a JSON-RPC 2.0 server that exposes the relight pipeline
// through the MCP protocol, so an MCP client can load a directory of rendered
// layers, inspect the tint parameters, and render re-tinted composites.
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
// Layer Set:
//   - relight_load: Load every .png in a directory as the layer set
//   - relight_info: Layer count, width and height
//   - relight_param_key: Per-layer hue/saturation/value parameter descriptors
//
// Rendering:
//   - relight_render: Render inline as base64 PNG or raw RGBA bytes
//   - relight_render_to_file: Render and write a PNG file
//
// # Layer State
//
// The server owns one layer set for the lifetime of the process. Each
// relight_load replaces it entirely; a failed load leaves the previous set in
// place.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string (e.g. "parameter count does not match layers: got 3, expected 6")
//
// # Usage
//
//	cfg, err := server.LoadConfig(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
