package colormath

import "golang.org/x/exp/constraints"

// Number is any type Clamp can bound.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns lo if v < lo, hi if v > hi, and v otherwise.
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit bounds a normalized channel to [0, 1].
func ClampUnit(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt bounds an integer channel to [0, 255].
func ClampInt(v int) int {
	return Clamp(v, 0, 255)
}

// ClampByte bounds a byte channel to [0, 255].
func ClampByte(v uint8) uint8 {
	return Clamp(v, 0, 255)
}

// channel truncates v toward zero and saturates it into a uint8.
func channel(v float64) uint8 {
	return uint8(Clamp(int(v), 0, 255))
}
