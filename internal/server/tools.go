package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// tintParams is the shared schema for the flat hue/saturation/value array.
var tintParams = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "number"},
	"description": "Flat tint parameters, three per layer in layer order: hue (0-1, wraps), saturation (0-1), value (0-1, may exceed 1). Length must be 3 x layer_count. See relight_param_key.",
}

var gammaParam = map[string]interface{}{
	"type":        "number",
	"description": "Output gamma exponent applied after exposure. Default 2.2",
	"default":     2.2,
}

var levelParam = map[string]interface{}{
	"type":        "number",
	"description": "Exposure multiplier applied before gamma. Default 1.0",
	"default":     1.0,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Layer set
		{
			Name:        "relight_load",
			Description: "Load every .png file directly inside a directory as the layer set, replacing any previous layers. All layers must share one size. Files are ordered by name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the layer directory",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "relight_info",
			Description: "Get the number of loaded layers and their shared width and height (0 when nothing is loaded).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "relight_param_key",
			Description: "List the render parameters for the loaded layers: three per layer (<i>-hue, <i>-saturation, <i>-value) with their defaults, in the order relight_render expects them.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Rendering
		{
			Name:        "relight_render",
			Description: "Composite the loaded layers under per-layer tints and return the result inline, either as a base64 PNG or as the raw RGBA byte buffer (width x height x 4, alpha 255).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"params": tintParams,
					"gamma":  gammaParam,
					"level":  levelParam,
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "raw"},
						"description": "png: base64-encoded PNG. raw: base64 of the RGBA bytes. Default png",
						"default":     "png",
					},
				},
				"required": []string{"params"},
			},
		},
		{
			Name:        "relight_render_to_file",
			Description: "Composite the loaded layers under per-layer tints and write the result as a PNG file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"params": tintParams,
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the PNG file to write",
					},
					"gamma": gammaParam,
					"level": levelParam,
				},
				"required": []string{"params", "path"},
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
