package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/relight-mcp/internal/imaging"
	"github.com/ironsheep/relight-mcp/internal/relight"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "relight_load", "relight_render").
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
		s.log.Warn("tool failed", "tool", params.Name, "kind", relight.KindOf(err).String(), "err", err)
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
	// Layer set
	case "relight_load":
		return s.handleLoad(args)
	case "relight_info":
		return s.handleInfo()
	case "relight_param_key":
		return s.handleParamKey()

	// Rendering
	case "relight_render":
		return s.handleRender(args)
	case "relight_render_to_file":
		return s.handleRenderToFile(args)

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

// decodeArgs unmarshals tool arguments, treating absent arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Layer Set Handlers ===

// LayerInfo reports the loaded layer set.
type LayerInfo struct {
	LayerCount int `json:"layer_count"`
	Width      int `json:"width"`
	Height     int `json:"height"`
}

type loadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("directory path must be a non-empty string")
	}
	if err := s.relight.Load(a.Path); err != nil {
		return nil, err
	}
	return s.handleInfo()
}

func (s *Server) handleInfo() (interface{}, error) {
	snap := s.relight.Store().Snapshot()
	return &LayerInfo{
		LayerCount: len(snap.Layers),
		Width:      snap.Width,
		Height:     snap.Height,
	}, nil
}

// ParamKeyResult lists the render parameters in flat order.
type ParamKeyResult struct {
	Params []relight.Descriptor `json:"params"`
}

func (s *Server) handleParamKey() (interface{}, error) {
	return &ParamKeyResult{Params: s.relight.Descriptors()}, nil
}

// === Render Handlers ===

type renderArgs struct {
	Params []float64 `json:"params"`
	Gamma  *float64  `json:"gamma"`
	Level  *float64  `json:"level"`
	Format string    `json:"format"`
	Path   string    `json:"path"`
}

// toneParams resolves gamma and level, falling back to the configured
// defaults only when the argument is absent.
func (s *Server) toneParams(a *renderArgs) (gamma, level float64) {
	gamma, level = s.cfg.Gamma, s.cfg.Level
	if a.Gamma != nil {
		gamma = *a.Gamma
	}
	if a.Level != nil {
		level = *a.Level
	}
	return gamma, level
}

// tints validates the flat parameter array against the current layer count.
func (s *Server) tints(params []float64) ([]relight.Tint, error) {
	n := s.relight.Count()
	if n == 0 {
		return nil, &relight.Error{Kind: relight.KindEmptyInput}
	}
	return relight.TintsFromFlat(params, n)
}

// RawRender carries a render-to-buffer result.
type RawRender struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Format     string `json:"format"`
	DataBase64 string `json:"data_base64"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	gamma, level := s.toneParams(&a)
	tints, err := s.tints(a.Params)
	if err != nil {
		return nil, err
	}

	switch a.Format {
	case "", "png":
		res := <-s.relight.RenderAsync(tints, gamma, level)
		if res.Err != nil {
			return nil, res.Err
		}
		return imaging.EncodePNGBase64(res.Image.Pix, res.Image.Width, res.Image.Height)
	case "raw":
		w, h := s.relight.Width(), s.relight.Height()
		buf := make([]byte, w*h*4)
		if err := s.relight.RenderToBuffer(tints, buf, gamma, level); err != nil {
			return nil, err
		}
		return &RawRender{
			Width:      w,
			Height:     h,
			Format:     "rgba8",
			DataBase64: base64.StdEncoding.EncodeToString(buf),
		}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", a.Format)
	}
}

// FileRender reports a completed render-to-file.
type FileRender struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleRenderToFile(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("output path must be a non-empty string")
	}
	gamma, level := s.toneParams(&a)
	tints, err := s.tints(a.Params)
	if err != nil {
		return nil, err
	}
	if err := s.relight.RenderToFile(tints, a.Path, gamma, level); err != nil {
		return nil, err
	}
	return &FileRender{
		Path:   a.Path,
		Width:  s.relight.Width(),
		Height: s.relight.Height(),
	}, nil
}
