package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_identify", "image_resize").
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
// Tool execution errors return a JSON-RPC error response. An invalid image
// (ImageMagick could not decode the input) maps to code -32001 so clients can
// distinguish bad input data from tool failures, which use -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var invalid *magick.InvalidImageError
		if errors.As(err, &invalid) {
			return s.errorResponse(req.ID, -32001, "Source is not a valid image", err.Error())
		}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Builds a command through the magick package (option names are validated
//     against the recognized option whitelist)
//  4. Runs the external tool and returns the classified result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Metadata
	case "image_identify":
		return s.handleImageIdentify(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_exif":
		return s.handleImageEXIF(args)

	// Conversion
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_format":
		return s.handleImageFormat(args)

	// Editing
	case "image_resize":
		return s.handleImageResize(args)
	case "image_mogrify":
		return s.handleImageMogrify(args)
	case "image_composite":
		return s.handleImageComposite(args)

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

// === Metadata Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

type identifyResult struct {
	Output string `json:"output"`
}

func (s *Server) handleImageIdentify(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := magick.OpenImage(a.Path, s.runner)
	if err != nil {
		return nil, err
	}
	out, err := img.Identify(context.Background())
	if err != nil {
		return nil, err
	}
	return &identifyResult{Output: out}, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Info(context.Background(), a.Path, s.runner)
}

type imageEXIFArgs struct {
	Path  string `json:"path"`
	Field string `json:"field"`
}

type exifResult struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) handleImageEXIF(args json.RawMessage) (interface{}, error) {
	var a imageEXIFArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := magick.OpenImage(a.Path, s.runner)
	if err != nil {
		return nil, err
	}
	value, err := img.EXIF(context.Background(), a.Field)
	if err != nil {
		return nil, err
	}
	return &exifResult{Field: a.Field, Value: value}, nil
}

// === Conversion Handlers ===

type imageConvertArgs struct {
	Path string `json:"path"`
	Dest string `json:"dest"`
}

type pathResult struct {
	Path string `json:"path"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if _, err := magick.OpenImage(a.Path, s.runner); err != nil {
		return nil, err
	}
	// convert decides the output format from the destination extension.
	cmd := magick.NewCommand("convert", a.Path, a.Dest)
	if _, err := s.runner.Run(context.Background(), cmd); err != nil {
		return nil, err
	}
	return &pathResult{Path: a.Dest}, nil
}

type imageFormatArgs struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

func (s *Server) handleImageFormat(args json.RawMessage) (interface{}, error) {
	var a imageFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := magick.OpenImage(a.Path, s.runner)
	if err != nil {
		return nil, err
	}
	if err := img.SetFormat(context.Background(), a.Format); err != nil {
		return nil, err
	}
	// The original path is gone and the new file is unknown to the cache.
	s.cache.Evict(a.Path)
	return &pathResult{Path: img.Path()}, nil
}

// === Editing Handlers ===

type imageResizeArgs struct {
	Path     string `json:"path"`
	Geometry string `json:"geometry"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := magick.OpenImage(a.Path, s.runner)
	if err != nil {
		return nil, err
	}
	err = img.Mogrify(context.Background(), func(tool *magick.Tool) {
		tool.Option("resize", a.Geometry)
	})
	if err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return &pathResult{Path: a.Path}, nil
}

type mogrifyOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

type imageMogrifyArgs struct {
	Path    string          `json:"path"`
	Options []mogrifyOption `json:"options"`
}

func (s *Server) handleImageMogrify(args json.RawMessage) (interface{}, error) {
	var a imageMogrifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Options) == 0 {
		return nil, fmt.Errorf("at least one option is required")
	}
	img, err := magick.OpenImage(a.Path, s.runner)
	if err != nil {
		return nil, err
	}
	err = img.Mogrify(context.Background(), func(tool *magick.Tool) {
		for _, opt := range a.Options {
			tool.Option(opt.Name, opt.Values...)
		}
	})
	if err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)
	return &pathResult{Path: a.Path}, nil
}

type imageCompositeArgs struct {
	Base     string `json:"base"`
	Overlay  string `json:"overlay"`
	Dest     string `json:"dest"`
	Gravity  string `json:"gravity,omitempty"`
	Dissolve string `json:"dissolve,omitempty"`
}

func (s *Server) handleImageComposite(args json.RawMessage) (interface{}, error) {
	var a imageCompositeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := magick.OpenImage(a.Base, s.runner)
	if err != nil {
		return nil, err
	}
	overlay, err := magick.OpenImage(a.Overlay, s.runner)
	if err != nil {
		return nil, err
	}
	err = base.Composite(context.Background(), overlay, a.Dest, func(tool *magick.Tool) {
		if a.Gravity != "" {
			tool.Option("gravity", a.Gravity)
		}
		if a.Dissolve != "" {
			tool.Option("dissolve", a.Dissolve)
		}
	})
	if err != nil {
		return nil, err
	}
	return &pathResult{Path: a.Dest}, nil
}
