package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
)

// DifferentPixelThreshold is the mean per-channel difference above which two
// pixels count as different.
const DifferentPixelThreshold = 10

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareRegionsResult contains region comparison information.
type CompareRegionsResult struct {
	SimilarityScore  float64        `json:"similarity_score"` // Share of compared pixels that match, 0-1
	PixelsDifferent  int            `json:"pixels_different"`
	TotalPixels      int            `json:"total_pixels"`
	SameSize         bool           `json:"same_size"`
	Region1Size      Size           `json:"region1_size"`
	Region2Size      Size           `json:"region2_size"`
	AverageColorDiff float64        `json:"average_color_diff"`
	Region1Mean      colormath.Info `json:"region1_mean"`
	Region2Mean      colormath.Info `json:"region2_mean"`
	BrightnessDiff   int            `json:"brightness_diff"` // Perceived brightness of region2 mean minus region1 mean
	MeanDeltaE       float64        `json:"mean_delta_e"`    // CIEDE2000 distance between the means, 0 = identical
}

// CompareRegions compares two regions of an image pixel by pixel and by mean color.
//
// Pixels are paired by their offset from each region's top-left corner; when
// the sizes differ only the overlapping width and height are compared.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	sub1, err := subImage(img, &r1)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	sub2, err := subImage(img, &r2)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	src1, src2 := NewSource(sub1), NewSource(sub2)
	mean1, err := colormath.DominantColor(src1)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	mean2, err := colormath.DominantColor(src2)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	w := min(src1.Width(), src2.Width())
	h := min(src1.Height(), src2.Height())
	totalPixels := w * h

	pixelsDifferent := 0
	var totalColorDiff float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			diff := channelDiff(src1.At(x, y), src2.At(x, y))
			totalColorDiff += diff
			if diff > DifferentPixelThreshold {
				pixelsDifferent++
			}
		}
	}

	similarity := 1.0 - float64(pixelsDifferent)/float64(totalPixels)
	avgColorDiff := totalColorDiff / float64(totalPixels)

	info1, info2 := colormath.Describe(mean1), colormath.Describe(mean2)
	return &CompareRegionsResult{
		SimilarityScore:  math.Round(similarity*1000) / 1000,
		PixelsDifferent:  pixelsDifferent,
		TotalPixels:      totalPixels,
		SameSize:         src1.Width() == src2.Width() && src1.Height() == src2.Height(),
		Region1Size:      Size{Width: src1.Width(), Height: src1.Height()},
		Region2Size:      Size{Width: src2.Width(), Height: src2.Height()},
		AverageColorDiff: math.Round(avgColorDiff*100) / 100,
		Region1Mean:      info1,
		Region2Mean:      info2,
		BrightnessDiff:   info2.Brightness - info1.Brightness,
		MeanDeltaE:       math.Round(deltaE(mean1, mean2)*1000) / 1000,
	}, nil
}

// channelDiff is the mean absolute difference of the RGB channels.
func channelDiff(a, b colormath.Color) float64 {
	return float64(absDiff(a.R, b.R)+absDiff(a.G, b.G)+absDiff(a.B, b.B)) / 3.0
}

// deltaE is the CIEDE2000 distance between the RGB parts of a and b, on
// go-colorful's scale where black to white is about 1.
func deltaE(a, b colormath.Color) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceCIEDE2000(cb)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
