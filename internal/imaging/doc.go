// Package imaging connects decoded images to the colormath package.
//
// It loads and caches image files, exposes them as colormath.PixelSource
// values, and implements the image-backed color tools: pixel sampling, the
// region mean ("dominant") color, a quantized palette and region comparison.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Alpha
//
// Go images store alpha-premultiplied values. Colors reported here are
// un-premultiplied (straight alpha), so a half-transparent red pixel reads as
// R=255 A=128 rather than R=128 A=128. Fully transparent pixels read as Empty.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Source is read-only after
// construction and may be sampled from several goroutines.
package imaging
