package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a JPEG or PNG photo",
	}
}

// clickProperties describes the arguments shared by every tool that
// segments the surface under a click.
func clickProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Click X coordinate in the upright photo (0-based). Out-of-range values are clamped",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Click Y coordinate in the upright photo (0-based). Out-of-range values are clamped",
		},
		"tolerance": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum per-channel difference (0-255) from the clicked pixel for a neighbor to join the surface. Default 30",
			"minimum":     0,
		},
		"tolerance_rgb": map[string]interface{}{
			"type":        "object",
			"description": "Per-channel tolerance; overrides tolerance when present",
			"properties": map[string]interface{}{
				"r": map[string]interface{}{"type": "integer", "minimum": 0},
				"g": map[string]interface{}{"type": "integer", "minimum": 0},
				"b": map[string]interface{}{"type": "integer", "minimum": 0},
			},
			"required": []string{"r", "g", "b"},
		},
		"range": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"fixed", "floating"},
			"description": "fixed: compare with the clicked pixel (default). floating: compare with the neighbor a pixel was reached from, following gradual shading",
			"default":     "fixed",
		},
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "paint_load",
			Description: "Load a photo and return its upright dimensions, format and file size. The decoded photo is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "paint_sample_color",
			Description: "Get the color of the pixel under a click as hex, RGB and CIE L*a*b*.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    map[string]interface{}{"type": "integer", "description": "X coordinate (clamped)"},
					"y":    map[string]interface{}{"type": "integer", "description": "Y coordinate (clamped)"},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "paint_parse_color",
			Description: "Validate a 6-digit hex paint color and return it as hex, RGB and CIE L*a*b*.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB or RRGGBB",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "paint_match_color",
			Description: "Find the palette color closest (CIEDE2000) to the current color of the surface under a click.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(clickProperties(), map[string]interface{}{
					"palette": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Candidate colors as #RRGGBB",
					},
				}),
				"required": []string{"path", "x", "y", "palette"},
			},
		},

		// Recoloring
		{
			Name:        "paint_segment",
			Description: "Select the contiguous surface under a click and return its soft-edged mask as base64 PNG, with area, bounding box and average color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": clickProperties(),
				"required":   []string{"path", "x", "y"},
			},
		},
		{
			Name:        "paint_preview",
			Description: "Paint the surface under a click with a new color while keeping its shading and texture. Returns the recolored photo as base64 JPEG (or PNG).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(clickProperties(), map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Target paint color as #RRGGBB or RRGGBB",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"jpeg", "png"},
						"description": "Output encoding. Default jpeg",
						"default":     "jpeg",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Default 85",
						"minimum":     1,
						"maximum":     100,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to also write the result to; format follows its extension",
					},
				}),
				"required": []string{"path", "x", "y", "color"},
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
