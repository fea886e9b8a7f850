package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	channel := func(name string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "integer",
			"description": name + " component (0-255)",
		}
	}

	return []Tool{
		// Color Conversion
		{
			Name:        "color_convert",
			Description: "Convert an RGBA color into every derived representation: hex, RGB, HSL, HSV/HSB, CMYK, packed decimal and the nearest CSS/X11 color name, with display strings per color space.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": channel("Red"),
					"g": channel("Green"),
					"b": channel("Blue"),
					"a": map[string]interface{}{
						"type":        "integer",
						"description": "Alpha component (0-255), defaults to 255 (opaque)",
					},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_from_hex",
			Description: "Parse a hex color string (#RRGGBB or #RRGGBBAA) and return every derived representation. Manual-entry counterpart of color_convert.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, e.g. \"#0080FF\" or \"0080FF7F\"",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_nearest_name",
			Description: "Find the nearest CSS/X11 named color by squared Euclidean RGB distance. Exact matches return distance 0; ties resolve to the first palette entry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": channel("Red"),
					"g": channel("Green"),
					"b": channel("Blue"),
				},
				"required": []string{"r", "g", "b"},
			},
		},

		// Eyedropper Sampling
		{
			Name:        "sampler_begin",
			Description: "Begin an eyedropper session: capture a frame from a screen or an image file. The frame is captured once and stays fixed until the session is resolved or cancelled. Returns frame dimensions and, when a display size is given, a base64 PNG preview scaled to that size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Frame source: \"screen\" (default) or \"file\"",
						"enum":        []string{"screen", "file"},
					},
					"display": map[string]interface{}{
						"type":        "integer",
						"description": "Display index for the screen source (default 0, the primary display)",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Image file path for the file source (PNG, JPEG or GIF)",
					},
					"display_width": map[string]interface{}{
						"type":        "integer",
						"description": "Optional preview width in displayed coordinates",
					},
					"display_height": map[string]interface{}{
						"type":        "integer",
						"description": "Optional preview height in displayed coordinates",
					},
				},
			},
		},
		{
			Name:        "sampler_resolve",
			Description: "Resolve a pointer press to a frame pixel and return its color. Coordinates are given in displayed coordinates together with the displayed size; positions at or beyond the displayed edge clamp to the nearest frame pixel. Ends the active session.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"display_width": map[string]interface{}{
						"type":        "integer",
						"description": "Displayed frame width in pixels",
					},
					"display_height": map[string]interface{}{
						"type":        "integer",
						"description": "Displayed frame height in pixels",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Pointer X position in displayed coordinates",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Pointer Y position in displayed coordinates",
					},
				},
				"required": []string{"display_width", "display_height", "x", "y"},
			},
		},
		{
			Name:        "sampler_cancel",
			Description: "Cancel the active eyedropper session without resolving a color.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
