package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/tanishpoddar/GreenVision/internal/raster"
)

// ndviColors are the anchors of the red to yellow to green ramp used for
// NDVI maps, lowest value first.
var ndviColors = []color.RGBA{
	{R: 165, G: 0, B: 38, A: 255},
	{R: 215, G: 48, B: 39, A: 255},
	{R: 244, G: 109, B: 67, A: 255},
	{R: 253, G: 174, B: 97, A: 255},
	{R: 254, G: 224, B: 139, A: 255},
	{R: 255, G: 255, B: 191, A: 255},
	{R: 217, G: 239, B: 139, A: 255},
	{R: 166, G: 217, B: 106, A: 255},
	{R: 102, G: 189, B: 99, A: 255},
	{R: 26, G: 152, B: 80, A: 255},
	{R: 0, G: 104, B: 55, A: 255},
}

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	norm := (value - min) / (max - min)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func interpolateUint8(a, b uint8, i, sectionLength int) uint8 {
	return a + uint8(i*(int(b)-int(a))/sectionLength)
}

func interpolateColor(a, b color.RGBA, i, sectionLength int) color.RGBA {
	return color.RGBA{
		interpolateUint8(a.R, b.R, i, sectionLength),
		interpolateUint8(a.G, b.G, i, sectionLength),
		interpolateUint8(a.B, b.B, i, sectionLength),
		255,
	}
}

// ndviPalette builds a 256 color ramp interpolating through ndviColors.
func ndviPalette() []color.RGBA {
	ramp := make([]color.RGBA, 256)

	bins := len(ndviColors) - 1
	sectionLength := 256 / bins
	bonus := 256 - sectionLength*bins
	bonusArr := make([]int, bins)
	for i := 0; i < bonus; i++ {
		bonusArr[i] = 1
	}

	index := 0
	for section, upperColor := range ndviColors[1:] {
		for i := 0; i < sectionLength+bonusArr[section]; i++ {
			ramp[index] = interpolateColor(ndviColors[section], upperColor, i, sectionLength)
			index++
		}
	}

	return ramp
}

// renderNDVI maps grid onto the color ramp over the [0, 1] range. Masked
// pixels come out fully transparent.
func renderNDVI(grid *raster.Grid) *image.RGBA {
	ramp := ndviPalette()
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !grid.IsValid(x, y) {
				continue
			}
			norm := normalize(grid.At(x, y), 0, 1)
			img.Set(x, y, ramp[int(norm*255)])
		}
	}

	return img
}

func CreateNDVIImage(grid *raster.Grid, outputPath string) error {
	if grid == nil {
		return fmt.Errorf("no grid provided")
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create NDVI image file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, renderNDVI(grid)); err != nil {
		return fmt.Errorf("failed to encode NDVI image: %w", err)
	}

	return nil
}

// CreateNDVIImageWithLegend renders the NDVI map with the color ramp and
// its value range drawn underneath.
func CreateNDVIImageWithLegend(grid *raster.Grid, outputPath string) error {
	if grid == nil {
		return fmt.Errorf("no grid provided")
	}

	img := renderNDVI(grid)
	legendHeight := 40
	width := grid.Width
	totalHeight := grid.Height + legendHeight

	dc := gg.NewContext(width, totalHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, 0)

	ramp := ndviPalette()
	barY := float64(grid.Height + 8)
	barHeight := 12.0
	for x := 0; x < width; x++ {
		rampIndex := 0
		if width > 1 {
			rampIndex = x * 255 / (width - 1)
		}
		clr := ramp[rampIndex]
		dc.SetRGB(float64(clr.R)/255, float64(clr.G)/255, float64(clr.B)/255)
		dc.DrawRectangle(float64(x), barY, 1, barHeight)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("0.0", 2, barY+barHeight+10, 0, 0.5)
	dc.DrawStringAnchored("1.0", float64(width)-2, barY+barHeight+10, 1, 0.5)

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create NDVI image file: %w", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, dc.Image()); err != nil {
		return fmt.Errorf("failed to encode NDVI image: %w", err)
	}

	return nil
}
