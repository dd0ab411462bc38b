// Package colormath implements arithmetic and text handling for 8-bit ARGB colors.
//
// Every function in this package is a pure computation over Color values. The
// only exception is Random, which draws from an IntSource supplied by the
// caller (or the process-wide math/rand/v2 generator when nil).
//
// # Text Formats
//
// Parse accepts three encodings:
//   - Hex: "#RRGGBB" (opaque) or "#AARRGGBB" (alpha first)
//   - Comma: "r,g,b" (opaque) or "r,g,b,a", decimal 0-255, whitespace tolerant
//   - Named: CSS/SVG color names, case-insensitive ("Red", "steelblue")
//
// # Empty Color
//
// Empty is the zero Color. It marks an absent entry and is skipped by Mix.
// Opaque black (A=255) is a regular color and is never treated as Empty.
//
// # Error Handling
//
// Parse failures return *FormatError or *UnknownColorNameError. DominantColor
// returns ErrEmptyImage for a zero-area source. Arithmetic never fails: results
// saturate or truncate into the 0-255 channel range.
package colormath
