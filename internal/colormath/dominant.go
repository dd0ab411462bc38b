package colormath

import (
	"sync"

	"github.com/anthonynsimon/bild/parallel"
)

// PixelSource is read-only access to a rectangular pixel grid. Coordinates are
// 0-based with x in [0, Width) and y in [0, Height). At may be called from
// several goroutines at once.
type PixelSource interface {
	Width() int
	Height() int
	At(x, y int) Color
}

// DominantColor returns the unweighted mean R, G and B over every pixel of src.
//
// Despite the name this is an average, not the most frequent color; use a
// histogram (see imaging.Palette) for that. Rows are summed in parallel into
// 64-bit accumulators, so the result matches a sequential scan. The result is
// opaque. A source with zero area returns ErrEmptyImage.
func DominantColor(src PixelSource) (Color, error) {
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return Empty, ErrEmptyImage
	}

	var (
		mu      sync.Mutex
		r, g, b int64
	)
	parallel.Line(h, func(start, end int) {
		var lr, lg, lb int64
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				c := src.At(x, y)
				lr += int64(c.R)
				lg += int64(c.G)
				lb += int64(c.B)
			}
		}
		mu.Lock()
		r += lr
		g += lg
		b += lb
		mu.Unlock()
	})

	total := int64(w) * int64(h)
	return RGB(uint8(r/total), uint8(g/total), uint8(b/total)), nil
}
