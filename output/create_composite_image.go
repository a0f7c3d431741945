package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"github.com/tanishpoddar/GreenVision/internal/raster"
)

// bandRange finds the min and max over the valid pixels of a band.
func bandRange(grid *raster.Grid) (float64, float64, bool) {
	found := false
	var min, max float64
	for i, value := range grid.Values {
		if !grid.Valid[i] {
			continue
		}
		if !found {
			min, max = value, value
			found = true
			continue
		}
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
	}
	return min, max, found
}

// CreateCompositeImage writes a false color composite when the image has
// the NIR, red and green bands, falling back to a grayscale rendering of
// the first band otherwise. Each band is stretched to its own value range.
func CreateCompositeImage(r *raster.Raster, outputPath string) error {
	if r == nil || r.BandCount() == 0 {
		return fmt.Errorf("no bands to render")
	}

	var img *image.RGBA
	if r.BandCount() >= 4 {
		nir, err := r.Band(4)
		if err != nil {
			return err
		}
		red, err := r.Band(3)
		if err != nil {
			return err
		}
		green, err := r.Band(2)
		if err != nil {
			return err
		}
		img = renderFalseColor(nir, red, green)
	} else {
		band, err := r.Band(1)
		if err != nil {
			return err
		}
		img = renderGrayscale(band)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create composite image file: %w", err)
	}
	defer outputFile.Close()

	err = jpeg.Encode(outputFile, img, &jpeg.Options{
		Quality: 100,
	})
	if err != nil {
		return fmt.Errorf("failed to encode composite image: %w", err)
	}

	return nil
}

func renderFalseColor(nir, red, green *raster.Grid) *image.RGBA {
	nirMin, nirMax, _ := bandRange(nir)
	redMin, redMax, _ := bandRange(red)
	greenMin, greenMax, _ := bandRange(green)

	img := image.NewRGBA(image.Rect(0, 0, nir.Width, nir.Height))
	for y := 0; y < nir.Height; y++ {
		for x := 0; x < nir.Width; x++ {
			if !nir.IsValid(x, y) || !red.IsValid(x, y) || !green.IsValid(x, y) {
				img.Set(x, y, color.RGBA{A: 255})
				continue
			}
			img.Set(x, y, color.RGBA{
				R: uint8(255 * normalize(nir.At(x, y), nirMin, nirMax)),
				G: uint8(255 * normalize(red.At(x, y), redMin, redMax)),
				B: uint8(255 * normalize(green.At(x, y), greenMin, greenMax)),
				A: 255,
			})
		}
	}
	return img
}

func renderGrayscale(band *raster.Grid) *image.RGBA {
	min, max, _ := bandRange(band)

	img := image.NewRGBA(image.Rect(0, 0, band.Width, band.Height))
	for y := 0; y < band.Height; y++ {
		for x := 0; x < band.Width; x++ {
			if !band.IsValid(x, y) {
				img.Set(x, y, color.RGBA{A: 255})
				continue
			}
			gray := uint8(255 * normalize(band.At(x, y), min, max))
			img.Set(x, y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
		}
	}
	return img
}
