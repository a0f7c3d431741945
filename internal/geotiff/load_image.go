package geotiff

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
	"github.com/tanishpoddar/GreenVision/internal/raster"
	"github.com/tanishpoddar/GreenVision/internal/utils"
)

// Load opens a GeoTIFF through GDAL and reads every band into memory,
// masking cells equal to the band's no-data sentinel. When GDAL cannot open
// the file the plain TIFF decoder is tried before giving up.
func Load(path string) (*raster.Raster, error) {
	var img *raster.Raster
	var err error
	utils.ExecuteWithMutex(func() {
		img, err = load(path)
	})
	if err == nil {
		return img, nil
	}

	fallback, fallbackErr := raster.DecodeTIFF(path)
	if fallbackErr != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	logrus.WithField("path", path).Warn("GDAL could not open the file, decoded it as a plain TIFF")
	return fallback, nil
}

func load(path string) (*raster.Raster, error) {
	ds, err := godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("%s", msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open TIFF file: %w", err)
	}
	defer ds.Close()

	structure := ds.Structure()
	width, height := structure.SizeX, structure.SizeY
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image %s has empty dimensions %dx%d", path, width, height)
	}

	img := &raster.Raster{
		Path:   path,
		Width:  width,
		Height: height,
	}

	for i, band := range ds.Bands() {
		data := make([]float64, width*height)
		if err := band.Read(0, 0, data, width, height); err != nil {
			return nil, fmt.Errorf("failed to read band %d: %w", i+1, err)
		}

		grid, err := raster.FromValues(width, height, data)
		if err != nil {
			return nil, err
		}

		// Integer imagery scales to [0, 1], matching the plain TIFF
		// decoder. Float products keep their values.
		scale := 1.0
		switch band.Structure().DataType {
		case godal.Byte:
			scale = 255
		case godal.UInt16:
			scale = 65535
		}

		nodata, hasNodata := band.NoData()
		for j, value := range data {
			if math.IsNaN(value) || (hasNodata && value == nodata) {
				grid.Valid[j] = false
				continue
			}
			if scale != 1 {
				grid.Values[j] = value / scale
			}
		}

		img.Bands = append(img.Bands, grid)
	}

	if geoTransform, err := ds.GeoTransform(); err == nil {
		img.GeoTransform = geoTransform
		img.Georeferenced = true
		img.Projection = ds.Projection()
	}

	return img, nil
}
