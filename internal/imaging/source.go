package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
)

// Source is a colormath.PixelSource backed by a straight-alpha copy of an image.
type Source struct {
	img *image.NRGBA
}

var _ colormath.PixelSource = (*Source)(nil)

// NewSource copies img into NRGBA form. Coordinates passed to At are relative
// to the image's top-left corner, whatever its bounds origin.
func NewSource(img image.Image) *Source {
	return &Source{img: imaging.Clone(img)}
}

func (s *Source) Width() int  { return s.img.Bounds().Dx() }
func (s *Source) Height() int { return s.img.Bounds().Dy() }

// At returns the color at (x, y). Fully transparent pixels and out-of-range
// coordinates read as Empty.
func (s *Source) At(x, y int) colormath.Color {
	c := s.img.NRGBAAt(x, y)
	if c.A == 0 {
		return colormath.Empty
	}
	return colormath.RGBA(c.R, c.G, c.B, c.A)
}
