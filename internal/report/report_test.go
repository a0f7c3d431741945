package report

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/tanishpoddar/GreenVision/internal/ndvi"
	"github.com/tanishpoddar/GreenVision/internal/series"
)

func floatPtr(v float64) *float64 {
	return &v
}

func buildSeries() *series.TimeSeries {
	ts := series.New()
	ts.Append(series.Entry{
		Label: "NDVI 2020.tif",
		Stats: ndvi.Stats{
			Min:         floatPtr(-0.123456),
			Max:         floatPtr(0.87654),
			Mean:        floatPtr(0.3640873),
			ValidPixels: 4,
			TotalPixels: 4,
		},
	})
	ts.Append(series.Entry{
		Label: "NDVI 2021.tif",
		Stats: ndvi.Stats{
			Min:         floatPtr(0.1),
			Max:         floatPtr(0.9),
			Mean:        floatPtr(0.5),
			ValidPixels: 3,
			TotalPixels: 4,
		},
	})
	ts.Append(series.Entry{
		Label: "masked.tif",
		Stats: ndvi.Stats{TotalPixels: 4},
	})
	return ts
}

func TestFromSeries(t *testing.T) {
	rows := FromSeries(buildSeries())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Image != "NDVI 2020.tif" {
		t.Errorf("image = %q, want NDVI 2020.tif", first.Image)
	}
	if first.NDVIMean == nil || *first.NDVIMean != 0.364 {
		t.Errorf("mean = %v, want rounded 0.364", first.NDVIMean)
	}
	if first.NDVIMin == nil || *first.NDVIMin != -0.123 {
		t.Errorf("min = %v, want rounded -0.123", first.NDVIMin)
	}
	if first.MeanDelta != nil {
		t.Errorf("first delta = %v, want nil", *first.MeanDelta)
	}
	if first.MinDesc != "Non-vegetation (water, clouds, barren land)" {
		t.Errorf("min desc = %q", first.MinDesc)
	}

	second := rows[1]
	if second.MeanDelta == nil || math.Abs(*second.MeanDelta-0.136) > 1e-9 {
		t.Errorf("second delta = %v, want 0.136", second.MeanDelta)
	}

	masked := rows[2]
	if masked.NDVIMin != nil || masked.NDVIMax != nil || masked.NDVIMean != nil {
		t.Error("expected masked image statistics to stay nil")
	}
	if masked.MeanDesc != "n/a" {
		t.Errorf("masked mean desc = %q, want n/a", masked.MeanDesc)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	rows := FromSeries(buildSeries())
	path := filepath.Join(t.TempDir(), "ndvi_report.csv")

	if err := SaveCSV(rows, path); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	loaded, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if len(loaded) != len(rows) {
		t.Fatalf("expected %d rows after round trip, got %d", len(rows), len(loaded))
	}

	for i, row := range rows {
		got := loaded[i]
		if got.Image != row.Image {
			t.Errorf("row %d image = %q, want %q", i, got.Image, row.Image)
		}
		checkValue := func(name string, got, want *float64) {
			if (got == nil) != (want == nil) {
				t.Errorf("row %d %s nil mismatch: got %v, want %v", i, name, got, want)
				return
			}
			if got != nil && math.Abs(*got-*want) > 1e-9 {
				t.Errorf("row %d %s = %v, want %v", i, name, *got, *want)
			}
		}
		checkValue("min", got.NDVIMin, row.NDVIMin)
		checkValue("max", got.NDVIMax, row.NDVIMax)
		checkValue("mean", got.NDVIMean, row.NDVIMean)
		checkValue("delta", got.MeanDelta, row.MeanDelta)
		if got.ValidPixels != row.ValidPixels {
			t.Errorf("row %d valid pixels = %d, want %d", i, got.ValidPixels, row.ValidPixels)
		}
	}
}

func TestSaveCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := SaveCSV(nil, path); err == nil {
		t.Error("expected error for empty report, got nil")
	}
}
