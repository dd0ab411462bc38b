package colormath

import "math"

// VisibleTextThreshold is the perceived brightness above which dark text reads better.
const VisibleTextThreshold = 130

// PerceivedBrightness estimates luminance with Rec. 601 weights:
//
//	sqrt(0.299*R² + 0.587*G² + 0.114*B²)
//
// truncated toward zero. Floating point rounding makes pure white 254.
func PerceivedBrightness(c Color) int {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return int(math.Sqrt(r*r*.299 + g*g*.587 + b*b*.114))
}

// VisibleTextColor picks opaque black or white for text drawn over c.
func VisibleTextColor(c Color) Color {
	if PerceivedBrightness(c) > VisibleTextThreshold {
		return Black
	}
	return White
}

// Luminosity is HSL lightness scaled to 0-240: ((max+min)*240 + 255) / 510.
func Luminosity(c Color) int {
	hi := int(max(c.R, c.G, c.B))
	lo := int(min(c.R, c.G, c.B))
	return ((hi+lo)*240 + 255) / 510
}
