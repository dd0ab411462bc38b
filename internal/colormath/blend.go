package colormath

import "github.com/samber/lo"

// Mix returns the component-wise mean (A, R, G, B) of every non-Empty color.
// Division truncates. With no non-Empty input the result is Empty.
func Mix(colors ...Color) Color {
	set := lo.Filter(colors, func(c Color, _ int) bool { return !c.IsEmpty() })
	if len(set) == 0 {
		return Empty
	}

	var a, r, g, b int
	for _, c := range set {
		a += int(c.A)
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(set)
	return ARGB(uint8(a/n), uint8(r/n), uint8(g/n), uint8(b/n))
}

// Lerp interpolates R, G and B independently: from + (to-from)*amount.
// amount is not clamped, so values outside [0, 1] extrapolate; each channel is
// truncated and then saturated to 0-255. The result is always opaque.
func Lerp(from, to Color, amount float64) Color {
	return RGB(
		lerpChannel(from.R, to.R, amount),
		lerpChannel(from.G, to.G, amount),
		lerpChannel(from.B, to.B, amount),
	)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return channel(float64(a) + (float64(b)-float64(a))*t)
}

// Darker subtracts delta from each RGB channel, flooring at 0. The result is opaque.
func Darker(c Color, delta uint8) Color {
	sub := func(v uint8) uint8 {
		if v > delta {
			return v - delta
		}
		return 0
	}
	return RGB(sub(c.R), sub(c.G), sub(c.B))
}

// Lighter adds delta to each RGB channel, saturating at 255. The result is opaque.
func Lighter(c Color, delta uint8) Color {
	add := func(v uint8) uint8 {
		if int(v)+int(delta) > 255 {
			return 255
		}
		return v + delta
	}
	return RGB(add(c.R), add(c.G), add(c.B))
}

// ChangeBrightness moves each RGB channel toward black (factor < 0) or white
// (factor >= 0). factor is clamped to [-1, 1]:
//   - factor < 0: channel * (1 + factor), so -0.5 halves every channel
//   - factor >= 0: (255 - channel) * factor + channel
//
// Alpha is preserved.
func ChangeBrightness(c Color, factor float64) Color {
	factor = Clamp(factor, -1, 1)

	adjust := func(v uint8) uint8 {
		f := float64(v)
		if factor < 0 {
			return channel(f * (1 + factor))
		}
		return channel((255-f)*factor + f)
	}
	return ARGB(c.A, adjust(c.R), adjust(c.G), adjust(c.B))
}

// LightenBy is ChangeBrightness(c, percent/100).
func LightenBy(c Color, percent int) Color {
	return ChangeBrightness(c, float64(percent)/100.0)
}

// DarkenBy is ChangeBrightness(c, -percent/100).
func DarkenBy(c Color, percent int) Color {
	return ChangeBrightness(c, -float64(percent)/100.0)
}

// Invert flips the RGB bits. Alpha is untouched.
func Invert(c Color) Color {
	return FromARGB(c.ToARGB() ^ 0xFFFFFF)
}
