package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
)

// SampleColor extracts the color at a pixel coordinate.
//
// The pixel is converted to straight-alpha 8-bit channels and described in
// every format colormath.Describe produces.
//
// Returns an error if (x, y) is outside the image bounds.
func SampleColor(img image.Image, x, y int) (*colormath.Info, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	pixel := NewSource(imaging.Crop(img, image.Rect(x, y, x+1, y+1)))
	info := colormath.Describe(pixel.At(0, 0))
	return &info, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string         `json:"label,omitempty"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Color colormath.Info `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in one call.
//
// If any point is out of bounds the whole call fails and no partial results
// are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		info, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *info,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// MeanColorResult is the average color of an image or region.
type MeanColorResult struct {
	Color      colormath.Info `json:"color"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	PixelCount int            `json:"pixel_count"`
}

// MeanColor computes colormath.DominantColor (the unweighted mean of R, G and
// B) over img, or over region when it is non-nil.
func MeanColor(img image.Image, region *Region) (*MeanColorResult, error) {
	sub, err := subImage(img, region)
	if err != nil {
		return nil, err
	}

	src := NewSource(sub)
	c, err := colormath.DominantColor(src)
	if err != nil {
		return nil, err
	}

	return &MeanColorResult{
		Color:      colormath.Describe(c),
		Width:      src.Width(),
		Height:     src.Height(),
		PixelCount: src.Width() * src.Height(),
	}, nil
}

// ColorFrequency represents a quantized color and its share of the pixels.
type ColorFrequency struct {
	Hex        string          `json:"hex"`
	Percentage float64         `json:"percentage"` // 0-100
	Color      colormath.Color `json:"rgba"`
}

// PaletteResult contains the most frequent colors, most common first.
type PaletteResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// Palette returns the count most frequent colors of img (or region).
//
// Channels are quantized to multiples of 16 before counting so near-identical
// shades group together:
//
//	quantized = (original / 16) * 16
//
// Fully transparent pixels are skipped and percentages are shares of the
// remaining pixels. Other alpha values are ignored. Ties are broken by hex
// value to keep the output stable. An image with no visible pixels yields an
// empty palette.
func Palette(img image.Image, count int, region *Region) (*PaletteResult, error) {
	sub, err := subImage(img, region)
	if err != nil {
		return nil, err
	}

	src := NewSource(sub)
	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return nil, colormath.ErrEmptyImage
	}

	counts := make(map[colormath.Color]int)
	visible := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.At(x, y)
			if c.IsEmpty() {
				continue
			}
			counts[colormath.RGB(c.R/16*16, c.G/16*16, c.B/16*16)]++
			visible++
		}
	}

	total := float64(visible)
	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / total * 100,
			Color:      c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &PaletteResult{Colors: colors}, nil
}
