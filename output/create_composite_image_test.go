package output

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/tanishpoddar/GreenVision/internal/raster"
)

func buildBand(t *testing.T, width, height int, values []float64) *raster.Grid {
	t.Helper()
	grid, err := raster.FromValues(width, height, values)
	if err != nil {
		t.Fatalf("expected no error building band, got %v", err)
	}
	return grid
}

func TestCreateCompositeImageFalseColor(t *testing.T) {
	r := &raster.Raster{
		Path:   "test.tif",
		Width:  2,
		Height: 2,
		Bands: []*raster.Grid{
			buildBand(t, 2, 2, []float64{0.1, 0.2, 0.3, 0.4}),
			buildBand(t, 2, 2, []float64{0.0, 0.5, 1.0, 0.75}),
			buildBand(t, 2, 2, []float64{0.2, 0.4, 0.6, 0.8}),
			buildBand(t, 2, 2, []float64{0.5, 0.1, 0.9, 0.3}),
		},
	}

	outputPath := filepath.Join(t.TempDir(), "composite.jpeg")
	if err := CreateCompositeImage(r, outputPath); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("expected file to exist, got %v", err)
	}
	defer file.Close()

	img, err := jpeg.Decode(file)
	if err != nil {
		t.Fatalf("expected a decodable JPEG, got %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("expected 2x2 image, got %v", img.Bounds())
	}
}

func TestCreateCompositeImageGrayscaleFallback(t *testing.T) {
	r := &raster.Raster{
		Path:   "single.tif",
		Width:  2,
		Height: 1,
		Bands: []*raster.Grid{
			buildBand(t, 2, 1, []float64{0.0, 1.0}),
		},
	}

	outputPath := filepath.Join(t.TempDir(), "gray.jpeg")
	if err := CreateCompositeImage(r, outputPath); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("expected file to exist, got %v", err)
	}
	defer file.Close()

	img, err := jpeg.Decode(file)
	if err != nil {
		t.Fatalf("expected a decodable JPEG, got %v", err)
	}

	withinTolerance := func(a, b uint32) bool {
		diff := int64(a) - int64(b)
		if diff < 0 {
			diff = -diff
		}
		// JPEG rounding moves channels a little
		return diff <= 514
	}

	r0, g0, b0, _ := img.At(0, 0).RGBA()
	r1, g1, b1, _ := img.At(1, 0).RGBA()
	if !withinTolerance(r0, g0) || !withinTolerance(g0, b0) || !withinTolerance(r1, g1) || !withinTolerance(g1, b1) {
		t.Errorf("expected grayscale pixels, got (%d,%d,%d) and (%d,%d,%d)", r0, g0, b0, r1, g1, b1)
	}
	if r1 < r0+0x8000 {
		t.Errorf("expected the brighter value to render much brighter, got %d and %d", r0, r1)
	}
}

func TestCreateCompositeImageNoBands(t *testing.T) {
	r := &raster.Raster{Path: "empty.tif", Width: 2, Height: 2}
	if err := CreateCompositeImage(r, filepath.Join(t.TempDir(), "out.jpeg")); err == nil {
		t.Fatal("expected an error for an image without bands")
	}
}
