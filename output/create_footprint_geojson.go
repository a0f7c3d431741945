package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Footprint is the georeferenced extent of one analyzed image.
type Footprint struct {
	Name     string
	XMin     float64
	YMin     float64
	XMax     float64
	YMax     float64
	MeanNDVI *float64
}

// CreateFootprintGeoJSON writes the analyzed extents as a feature
// collection, one polygon per georeferenced image.
func CreateFootprintGeoJSON(footprints []Footprint, outputPath string) error {
	if len(footprints) == 0 {
		return fmt.Errorf("no footprints to write")
	}

	collection := geojson.NewFeatureCollection()
	for _, footprint := range footprints {
		ring := orb.Ring{
			{footprint.XMin, footprint.YMin},
			{footprint.XMax, footprint.YMin},
			{footprint.XMax, footprint.YMax},
			{footprint.XMin, footprint.YMax},
			{footprint.XMin, footprint.YMin},
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["image"] = footprint.Name
		if footprint.MeanNDVI != nil {
			feature.Properties["ndvi_mean"] = *footprint.MeanNDVI
		}
		collection.Append(feature)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create GeoJSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}

	return nil
}
