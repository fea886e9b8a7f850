package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-inspect-mcp/internal/colormodel"
	"github.com/ironsheep/color-inspect-mcp/internal/sampler"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "sampler_begin").
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
	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_from_hex":
		return s.handleColorFromHex(args)
	case "color_nearest_name":
		return s.handleColorNearestName(args)

	// Eyedropper Sampling
	case "sampler_begin":
		return s.handleSamplerBegin(args)
	case "sampler_resolve":
		return s.handleSamplerResolve(args)
	case "sampler_cancel":
		return s.handleSamplerCancel(args)

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

// report derives every representation of c and attaches the nearest palette
// name.
func (s *Server) report(c colormodel.Color) *colormodel.Report {
	return colormodel.NewReport(c, s.palette.Nearest(c.R, c.G, c.B).Name)
}

// === Color Conversion Handlers ===

type colorConvertArgs struct {
	R int  `json:"r"`
	G int  `json:"g"`
	B int  `json:"b"`
	A *int `json:"a"` // pointer: 0 is a legal alpha, absence means opaque
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	alpha := 255
	if a.A != nil {
		alpha = *a.A
	}
	c, err := colormodel.New(a.R, a.G, a.B, alpha)
	if err != nil {
		return nil, err
	}
	return s.report(c), nil
}

type colorFromHexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleColorFromHex(args json.RawMessage) (interface{}, error) {
	var a colorFromHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colormodel.ParseHex(a.Hex)
	if err != nil {
		return nil, err
	}
	return s.report(c), nil
}

type colorNearestNameArgs struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *Server) handleColorNearestName(args json.RawMessage) (interface{}, error) {
	var a colorNearestNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colormodel.NewOpaque(a.R, a.G, a.B)
	if err != nil {
		return nil, err
	}
	return s.palette.Nearest(c.R, c.G, c.B), nil
}

// === Eyedropper Sampling Handlers ===

type samplerBeginArgs struct {
	Source        string `json:"source"`
	Display       int    `json:"display"`
	Path          string `json:"path"`
	DisplayWidth  int    `json:"display_width"`
	DisplayHeight int    `json:"display_height"`
}

type samplerBeginResult struct {
	State   string                 `json:"state"`
	Width   int                    `json:"width"`
	Height  int                    `json:"height"`
	Preview *sampler.PreviewResult `json:"preview,omitempty"`
}

func (s *Server) handleSamplerBegin(args json.RawMessage) (interface{}, error) {
	var a samplerBeginArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if s.session != nil && s.session.State() == sampler.StateCaptured {
		return nil, fmt.Errorf("a sampling session is already active; resolve or cancel it first")
	}

	provider, err := s.captureProvider(a)
	if err != nil {
		return nil, err
	}

	session := sampler.NewSession(provider)
	frame, err := session.Begin()
	if err != nil {
		return nil, err
	}
	s.session = session

	result := &samplerBeginResult{
		State:  session.State().String(),
		Width:  frame.Width(),
		Height: frame.Height(),
	}
	if a.DisplayWidth > 0 && a.DisplayHeight > 0 {
		preview, err := sampler.Preview(frame, a.DisplayWidth, a.DisplayHeight)
		if err != nil {
			return nil, err
		}
		result.Preview = preview
	}
	return result, nil
}

// captureProvider picks the frame source for a session. An explicit source
// wins; otherwise a path implies the file source and the screen is the
// default.
func (s *Server) captureProvider(a samplerBeginArgs) (sampler.CaptureProvider, error) {
	source := a.Source
	if source == "" {
		if a.Path != "" {
			source = "file"
		} else {
			source = "screen"
		}
	}

	switch source {
	case "screen":
		return s.newScreen(a.Display), nil
	case "file":
		if a.Path == "" {
			return nil, fmt.Errorf("file source requires a path")
		}
		return s.files.Source(a.Path), nil
	default:
		return nil, fmt.Errorf("unknown capture source: %s", source)
	}
}

type samplerResolveArgs struct {
	DisplayWidth  int `json:"display_width"`
	DisplayHeight int `json:"display_height"`
	X             int `json:"x"`
	Y             int `json:"y"`
}

type samplerResolveResult struct {
	State string             `json:"state"`
	Color *colormodel.Report `json:"color"`
}

func (s *Server) handleSamplerResolve(args json.RawMessage) (interface{}, error) {
	var a samplerResolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if s.session == nil {
		return nil, fmt.Errorf("no sampling session; call sampler_begin first")
	}

	c, err := s.session.ResolvePointer(sampler.DisplayMapping{
		DisplayWidth:  a.DisplayWidth,
		DisplayHeight: a.DisplayHeight,
		PointerX:      a.X,
		PointerY:      a.Y,
	})
	if err != nil {
		return nil, err
	}

	state := s.session.State().String()
	s.session = nil
	return &samplerResolveResult{State: state, Color: s.report(c)}, nil
}

type samplerCancelResult struct {
	State string `json:"state"`
}

func (s *Server) handleSamplerCancel(args json.RawMessage) (interface{}, error) {
	if s.session == nil {
		return nil, fmt.Errorf("no sampling session; call sampler_begin first")
	}
	if err := s.session.Cancel(); err != nil {
		return nil, err
	}
	state := s.session.State().String()
	s.session = nil
	return &samplerCancelResult{State: state}, nil
}
