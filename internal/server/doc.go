// Package server implements the MCP (Model Context Protocol) server for the
// ImageMagick command-line tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image operations
// through the MCP protocol. Every operation shells out to the ImageMagick
// binaries (identify, mogrify, convert, composite) through the magick
// package's command builder and runner; no pixel data is ever decoded in
// process.
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
// Metadata:
//   - image_identify: Raw identify output
//   - image_info: Format, dimensions, and file size (cached per path)
//   - image_exif: Read one EXIF field
//
// Conversion:
//   - image_convert: Convert to a new file, format chosen by extension
//   - image_format: Convert in place with the rename bookkeeping
//
// Editing:
//   - image_resize: Resize in place by geometry string
//   - image_mogrify: Apply whitelisted mogrify options in order
//   - image_composite: Layer one image onto another
//
// # Metadata Caching
//
// The server caches identify metadata by path and reuses it across tool
// calls. Tools that modify a file evict its entry, so a later image_info
// re-runs identify. The cache persists for the lifetime of the server
// process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32001 when ImageMagick reports the input is not a decodable
//     image, -32000 for any other tool failure, or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The classifier's diagnostic, including the rendered command and
//     exit status for generic failures
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	runner := magick.NewRunner(magick.Config{Timeout: 60 * time.Second})
//	srv := server.New(runner)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
