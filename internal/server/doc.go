// Package server implements the MCP (Model Context Protocol) server for
// paint-the-wall previews.
//
// This package is the serving layer around the paint core: it reads photos
// from disk, maps clicks and colors from tool arguments into core calls, and
// returns encoded results.
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
//   - paint_load: Load a photo and get metadata
//   - paint_sample_color: Color under a click
//   - paint_parse_color: Validate a hex paint color
//   - paint_match_color: Nearest palette color to the clicked surface
//   - paint_segment: Soft mask of the clicked surface
//   - paint_preview: Recolor the clicked surface
//
// # Configuration
//
// Settings come from the environment (see ConfigFromEnv):
//   - PAINT_MCP_LOG_LEVEL=debug enables request logging
//   - PAINT_MCP_DEFAULT_TOLERANCE sets the tolerance used when a call omits it
//   - PAINT_MCP_MAX_DIMENSION bounds the processed photo size (0 disables)
//   - PAINT_MCP_JPEG_QUALITY sets the default JPEG output quality
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses:
//   - -32602 "Invalid params" with details when arguments cannot be decoded
//   - -32000 "Image processing failed" without details for any processing
//     failure (unreadable photo, malformed color, invalid input). The cause
//     is written to the log for operators.
//
// # Image Caching
//
// Decoded photos are cached by path for the lifetime of the process so
// repeated clicks on the same photo skip decoding. Masks and results are
// never cached.
package server
