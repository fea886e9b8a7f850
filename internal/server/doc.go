// Package server implements the MCP (Model Context Protocol) server backing
// the color-inspection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color
// conversion engine and the eyedropper sampler through the MCP protocol, so
// MCP-compatible clients (picker UIs, AI assistants, test harnesses) can
// convert colors and sample pixels from captured frames.
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
// Color conversion:
//   - color_convert: RGBA components -> every derived representation
//   - color_from_hex: hex string -> every derived representation
//   - color_nearest_name: RGB -> nearest CSS/X11 color name
//
// Eyedropper sampling:
//   - sampler_begin: capture a frame from a screen or image file
//   - sampler_resolve: map a pointer press to a pixel and return its color
//   - sampler_cancel: end the session without a color
//
// # Sampling Sessions
//
// The server holds at most one sampling session at a time, mirroring the
// single eyedropper interaction of the UI it backs. sampler_begin captures
// the frame once; the frame stays fixed until sampler_resolve or
// sampler_cancel ends the session. Beginning a second session while one is
// active is rejected.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
