package colormath

import (
	"fmt"
	"image/color"
)

// Color is an immutable 8-bit ARGB value.
type Color struct {
	A uint8 `json:"a"` // Alpha/opacity (0 = transparent, 255 = opaque)
	R uint8 `json:"r"` // Red
	G uint8 `json:"g"` // Green
	B uint8 `json:"b"` // Blue
}

var (
	// Empty is the "no color" sentinel. It is the zero value of Color.
	Empty = Color{}

	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ARGB returns a color from components in alpha-first order.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGBA returns a color from components in alpha-last order.
func RGBA(r, g, b, a uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromColor converts any color.Color into a Color with straight (non-premultiplied) alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ToARGB packs the color as 0xAARRGGBB.
func (c Color) ToARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// IsEmpty reports whether c is the Empty sentinel.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// String formats the color as "r,g,b,a", the four-token form accepted by ParseComma.
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

// Hex formats the color as "#RRGGBB". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexARGB formats the color as "#AARRGGBB".
func (c Color) HexARGB() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}
