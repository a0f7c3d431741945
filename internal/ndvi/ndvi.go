package ndvi

import (
	"fmt"
	"math"

	"github.com/tanishpoddar/GreenVision/internal/raster"
)

// Stats holds the aggregate NDVI values of one image, computed over valid
// pixels only. The fields stay nil when the image has no valid pixel, so a
// fully masked raster is reported as missing instead of defaulting to zero.
type Stats struct {
	Min         *float64
	Max         *float64
	Mean        *float64
	ValidPixels int
	TotalPixels int
}

// Missing reports whether the image had no valid pixel to aggregate.
func (s Stats) Missing() bool {
	return s.Mean == nil
}

// Compute derives NDVI = (NIR - RED) / (NIR + RED) for two same-shaped
// bands. A pixel is masked invalid when either input is masked or NaN, when
// the denominator is zero, or when the ratio falls outside [-1, 1]. Masked
// pixels never propagate NaN or Inf into the result.
func Compute(red, nir *raster.Grid) (*raster.Grid, error) {
	if red == nil || nir == nil {
		return nil, fmt.Errorf("red and nir bands are required")
	}
	if red.Width != nir.Width || red.Height != nir.Height {
		return nil, fmt.Errorf("band dimensions do not match: red is %dx%d, nir is %dx%d",
			red.Width, red.Height, nir.Width, nir.Height)
	}

	result, err := raster.NewGrid(red.Width, red.Height)
	if err != nil {
		return nil, err
	}

	for i := range result.Values {
		if !red.Valid[i] || !nir.Valid[i] {
			result.Valid[i] = false
			continue
		}
		redValue := red.Values[i]
		nirValue := nir.Values[i]
		if math.IsNaN(redValue) || math.IsNaN(nirValue) {
			result.Valid[i] = false
			continue
		}

		denominator := nirValue + redValue
		if denominator == 0 {
			result.Valid[i] = false
			continue
		}

		value := (nirValue - redValue) / denominator
		if math.IsNaN(value) || math.IsInf(value, 0) || value < -1 || value > 1 {
			result.Valid[i] = false
			continue
		}
		result.Values[i] = value
	}

	return result, nil
}

// FromBand treats an already computed NDVI band as the result, masking
// non-finite cells. Sentinel no-data masking is expected to have happened
// at decode time.
func FromBand(band *raster.Grid) (*raster.Grid, error) {
	if band == nil {
		return nil, fmt.Errorf("ndvi band is required")
	}

	result, err := raster.NewGrid(band.Width, band.Height)
	if err != nil {
		return nil, err
	}

	for i := range result.Values {
		if !band.Valid[i] {
			result.Valid[i] = false
			continue
		}
		value := band.Values[i]
		if math.IsNaN(value) || math.IsInf(value, 0) {
			result.Valid[i] = false
			continue
		}
		result.Values[i] = value
	}

	return result, nil
}

// Summarize computes min, max and mean over the valid pixels of an NDVI
// grid. All statistics stay nil when nothing is valid.
func Summarize(grid *raster.Grid) Stats {
	stats := Stats{TotalPixels: len(grid.Values)}

	var sum float64
	var min, max float64
	for i, value := range grid.Values {
		if !grid.Valid[i] {
			continue
		}
		if stats.ValidPixels == 0 {
			min, max = value, value
		} else {
			if value < min {
				min = value
			}
			if value > max {
				max = value
			}
		}
		sum += value
		stats.ValidPixels++
	}

	if stats.ValidPixels == 0 {
		return stats
	}

	mean := sum / float64(stats.ValidPixels)
	stats.Min = &min
	stats.Max = &max
	stats.Mean = &mean
	return stats
}

// FormatValue renders a nil-able statistic at the three-decimal display
// precision, with "n/a" standing in for missing values.
func FormatValue(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *value)
}
