package raster

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/tiff"
)

// DecodeTIFF reads a plain TIFF without GDAL. It handles the grayscale and
// RGB layouts the pure-Go decoder supports, scaling integer samples to
// [0, 1]. No georeferencing is recovered on this path.
func DecodeTIFF(path string) (*Raster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open TIFF file: %w", err)
	}
	defer file.Close()

	img, err := tiff.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TIFF file: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var bands []*Grid
	switch typed := img.(type) {
	case *image.Gray:
		band, err := NewGrid(width, height)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				band.Set(x, y, float64(typed.Pix[y*typed.Stride+x])/255)
			}
		}
		bands = []*Grid{band}
	case *image.Gray16:
		band, err := NewGrid(width, height)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				offset := y*typed.Stride + x*2
				value := uint16(typed.Pix[offset])<<8 | uint16(typed.Pix[offset+1])
				band.Set(x, y, float64(value)/65535)
			}
		}
		bands = []*Grid{band}
	default:
		red, err := NewGrid(width, height)
		if err != nil {
			return nil, err
		}
		green, _ := NewGrid(width, height)
		blue, _ := NewGrid(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				red.Set(x, y, float64(r)/65535)
				green.Set(x, y, float64(g)/65535)
				blue.Set(x, y, float64(b)/65535)
			}
		}
		bands = []*Grid{red, green, blue}
	}

	return &Raster{
		Path:   path,
		Width:  width,
		Height: height,
		Bands:  bands,
	}, nil
}
