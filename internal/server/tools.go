package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Metadata
		{
			Name:        "image_identify",
			Description: "Run ImageMagick identify on an image and return its raw output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get an image's format, dimensions, and file size. Results are cached per path until the image is modified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_exif",
			Description: "Read one EXIF field from an image (e.g. DateTimeOriginal, Orientation). Returns an empty value when the tag is absent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"field": map[string]interface{}{
						"type":        "string",
						"description": "EXIF field name without the EXIF: prefix",
					},
				},
				"required": []string{"path", "field"},
			},
		},

		// Conversion
		{
			Name:        "image_convert",
			Description: "Convert an image to a new file; the destination extension selects the output format. The source file is left untouched.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the converted image, with the target extension",
					},
				},
				"required": []string{"path", "dest"},
			},
		},
		{
			Name:        "image_format",
			Description: "Convert an image to another format in place. The file is renamed to the new extension and the old file is removed; the response carries the new path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Target format as an extension without a dot (e.g. png, webp)",
					},
				},
				"required": []string{"path", "format"},
			},
		},

		// Editing
		{
			Name:        "image_resize",
			Description: "Resize an image in place using an ImageMagick geometry string (e.g. 200x200, 50%, 640x480!).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"geometry": map[string]interface{}{
						"type":        "string",
						"description": "ImageMagick geometry specification",
					},
				},
				"required": []string{"path", "geometry"},
			},
		},
		{
			Name:        "image_mogrify",
			Description: "Apply a sequence of mogrify options to an image in place. Option names are validated against the recognized ImageMagick option set; unknown names fail the whole call without running anything. Format changes are rejected here - use image_format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"options": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"name": map[string]interface{}{
									"type":        "string",
									"description": "Option name, e.g. resize, strip, auto-orient",
								},
								"values": map[string]interface{}{
									"type":        "array",
									"items":       map[string]interface{}{"type": "string"},
									"description": "Optional option values, space-joined into one argument",
								},
							},
							"required": []string{"name"},
						},
						"description": "Options applied in order",
					},
				},
				"required": []string{"path", "options"},
			},
		},
		{
			Name:        "image_composite",
			Description: "Layer an overlay image onto a base image and write the result to a new file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the base image",
					},
					"overlay": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the overlay image",
					},
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path for the composited result",
					},
					"gravity": map[string]interface{}{
						"type":        "string",
						"description": "Optional overlay placement (e.g. SouthEast, Center)",
					},
					"dissolve": map[string]interface{}{
						"type":        "string",
						"description": "Optional dissolve percentage for blending (e.g. 50)",
					},
				},
				"required": []string{"base", "overlay", "dest"},
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
