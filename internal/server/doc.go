// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// The server speaks JSON-RPC 2.0 and exposes the colormath operations, plus a
// few image-backed ones, as MCP tools.
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
// Parsing and Generation:
//   - color_parse: Parse hex, comma-separated or named text and describe the color
//   - color_random: Random opaque color
//   - color_hex_to_decimal: Base-16 text to a signed 32-bit integer
//
// Blending:
//   - color_mix: Channel-wise average, skipping empty entries
//   - color_lerp: Linear interpolation between two colors
//
// Brightness Adjustment:
//   - color_darker, color_lighter: Fixed per-channel offset
//   - color_brightness: Correction factor in [-1, 1]
//   - color_lighten, color_darken: Percentage toward white or black
//   - color_invert: RGB complement
//   - color_text: Black or white text for a background
//
// Image Operations:
//   - image_load: Load image and get metadata
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_color: Mean color of the image or a region
//   - image_palette: Most frequent quantized colors
//   - image_compare_regions: Pixel and mean-color comparison of two regions
//
// Every color in a result is a colormath.Info, so clients always get the hex,
// channel, brightness and text-color forms together.
//
// # Image Caching
//
// The server keeps decoded images in memory keyed by path for the lifetime
// of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithOptions(server.Options{PaletteCount: 8})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
