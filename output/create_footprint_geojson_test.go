package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"
)

func TestCreateFootprintGeoJSON(t *testing.T) {
	mean := 0.42
	footprints := []Footprint{
		{Name: "NDVI 2020.tif", XMin: 100, YMin: 47.5, XMax: 105, YMax: 50, MeanNDVI: &mean},
		{Name: "NDVI 2021.tif", XMin: 100, YMin: 47.5, XMax: 105, YMax: 50},
	}

	outputPath := filepath.Join(t.TempDir(), "footprints.geojson")
	if err := CreateFootprintGeoJSON(footprints, outputPath); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("expected file to exist, got %v", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("expected valid GeoJSON, got %v", err)
	}
	if len(collection.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(collection.Features))
	}

	first := collection.Features[0]
	if first.Properties.MustString("image") != "NDVI 2020.tif" {
		t.Errorf("expected image property, got %v", first.Properties["image"])
	}
	if first.Properties.MustFloat64("ndvi_mean") != 0.42 {
		t.Errorf("expected ndvi_mean property, got %v", first.Properties["ndvi_mean"])
	}

	bound := first.Geometry.Bound()
	if bound.Min[0] != 100 || bound.Min[1] != 47.5 || bound.Max[0] != 105 || bound.Max[1] != 50 {
		t.Errorf("expected footprint bound [100 47.5 105 50], got %v", bound)
	}

	second := collection.Features[1]
	if _, ok := second.Properties["ndvi_mean"]; ok {
		t.Errorf("expected no ndvi_mean for an image without statistics")
	}
}

func TestCreateFootprintGeoJSONEmpty(t *testing.T) {
	if err := CreateFootprintGeoJSON(nil, filepath.Join(t.TempDir(), "out.geojson")); err == nil {
		t.Fatal("expected an error for an empty footprint list")
	}
}
