package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGBA != colormath.RGB(255, 128, 64) {
		t.Errorf("RGBA: got %v, want 255,128,64,255", result.RGBA)
	}
	if result.Text != "255,128,64,255" {
		t.Errorf("Text: got %s, want 255,128,64,255", result.Text)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name          string
		color         color.RGBA
		wantHex       string
		wantName      string
		wantTextColor string
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", "red", "#000000"},
		{"pure lime", color.RGBA{0, 255, 0, 255}, "#00FF00", "lime", "#000000"},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF", "blue", "#FFFFFF"},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", "white", "#000000"},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", "black", "#FFFFFF"},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", "gray", "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.Name != tt.wantName {
				t.Errorf("Name: got %s, want %s", result.Name, tt.wantName)
			}
			if result.TextColor != tt.wantTextColor {
				t.Errorf("TextColor: got %s, want %s", result.TextColor, tt.wantTextColor)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	expectedHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s",
				i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_EmptyPoints(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := SampleColorsMulti(img, []LabeledPoint{})
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 0 {
		t.Errorf("expected 0 samples, got %d", len(result.Samples))
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	_, err := SampleColorsMulti(img, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestMeanColor_Uniform(t *testing.T) {
	img := createInMemoryImage(64, 48, color.RGBA{12, 34, 56, 255})

	result, err := MeanColor(img, nil)
	if err != nil {
		t.Fatalf("MeanColor failed: %v", err)
	}
	if result.Color.RGBA != colormath.RGB(12, 34, 56) {
		t.Errorf("color: got %v, want 12,34,56,255", result.Color.RGBA)
	}
	if result.PixelCount != 64*48 {
		t.Errorf("PixelCount: got %d, want %d", result.PixelCount, 64*48)
	}
}

func TestMeanColor_Pattern(t *testing.T) {
	img := createPatternImage(100, 100)

	// Quadrants: red, green, blue, white -> mean (510/4, 510/4, 510/4)
	result, err := MeanColor(img, nil)
	if err != nil {
		t.Fatalf("MeanColor failed: %v", err)
	}
	if result.Color.Hex != "#7F7F7F" {
		t.Errorf("Hex: got %s, want #7F7F7F", result.Color.Hex)
	}
}

func TestMeanColor_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name    string
		region  Region
		wantHex string
	}{
		{"top-left", Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, "#FF0000"},
		{"top-right", Region{X1: 50, Y1: 0, X2: 100, Y2: 50}, "#00FF00"},
		{"bottom row", Region{X1: 0, Y1: 50, X2: 100, Y2: 100}, "#7F7FFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.region
			result, err := MeanColor(img, &r)
			if err != nil {
				t.Fatalf("MeanColor failed: %v", err)
			}
			if result.Color.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Color.Hex, tt.wantHex)
			}
		})
	}
}

func TestMeanColor_InvalidRegion(t *testing.T) {
	img := createPatternImage(100, 100)
	if _, err := MeanColor(img, &Region{X1: 0, Y1: 0, X2: 200, Y2: 50}); err == nil {
		t.Error("MeanColor should fail for a region outside the image")
	}
}

func TestMeanColor_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	_, err := MeanColor(img, nil)
	if !errors.Is(err, colormath.ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
}

func TestPalette(t *testing.T) {
	// 80% red, 20% green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255})
			}
		}
	}

	result, err := Palette(img, 5, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	// 255 quantizes to 240 (#F0)
	if result.Colors[0].Hex != "#F00000" || result.Colors[0].Percentage != 80 {
		t.Errorf("first color: got %s %.1f%%, want #F00000 80%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#00F000" {
		t.Errorf("second color: got %s, want #00F000", result.Colors[1].Hex)
	}
}

func TestPalette_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	region := &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := Palette(img, 5, region)
	if err != nil {
		t.Fatalf("Palette with region failed: %v", err)
	}

	if len(result.Colors) != 1 || result.Colors[0].Percentage != 100 {
		t.Errorf("expected a single 100%% color in the red quadrant, got %+v", result.Colors)
	}
}

func TestPalette_CountLimitAndOrder(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Palette(img, 3, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(result.Colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(result.Colors))
	}
	// All four quadrants tie at 25%, so order falls back to hex.
	want := []string{"#0000F0", "#00F000", "#F00000"}
	for i, c := range result.Colors {
		if c.Hex != want[i] {
			t.Errorf("color %d: got %s, want %s", i, c.Hex, want[i])
		}
	}
}

func TestPalette_SkipsTransparentPixels(t *testing.T) {
	// Left half transparent, right half opaque blue.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	result, err := Palette(img, 5, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color, got %+v", result.Colors)
	}
	if result.Colors[0].Hex != "#0000F0" || result.Colors[0].Percentage != 100 {
		t.Errorf("got %s %.1f%%, want #0000F0 100%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
}

func TestPalette_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	result, err := Palette(img, 5, nil)
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if len(result.Colors) != 0 {
		t.Errorf("expected an empty palette, got %+v", result.Colors)
	}
}
