package delivery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/report"
	"github.com/tanishpoddar/GreenVision/output"
)

// ExportReport writes the statistics table as XLSX and CSV and returns
// both paths.
func (s *Session) ExportReport() (string, string, error) {
	if s.Series.Len() == 0 {
		return "", "", fmt.Errorf("no analyzed images to export")
	}
	if err := os.MkdirAll(properties.ResultPath(), os.ModePerm); err != nil {
		return "", "", fmt.Errorf("failed to create result folder: %w", err)
	}

	rows := report.FromSeries(s.Series)

	xlsxPath := filepath.Join(properties.ResultPath(), "NDVI_Stats_Report.xlsx")
	if err := report.WriteXLSX(rows, xlsxPath); err != nil {
		return "", "", err
	}

	csvPath := filepath.Join(properties.ResultPath(), "NDVI_Stats_Report.csv")
	if err := report.SaveCSV(rows, csvPath); err != nil {
		return "", "", err
	}

	return xlsxPath, csvPath, nil
}

// ExportArtifacts renders the cross-image artifacts: trend chart, NDVI
// timelapse and footprint GeoJSON. A failed artifact is warned and the
// remaining ones still render.
func (s *Session) ExportArtifacts() ([]string, error) {
	if s.Series.Len() == 0 {
		return nil, fmt.Errorf("no analyzed images to export")
	}
	if err := os.MkdirAll(properties.ResultPath(), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create result folder: %w", err)
	}

	written := []string{}

	trendPath := filepath.Join(properties.ResultPath(), "ndvi_trend.png")
	if err := output.CreateTrendChart(s.Series, trendPath); err != nil {
		logrus.WithField("error", err).Warn("failed to render trend chart")
	} else {
		written = append(written, trendPath)
	}

	if len(s.NDVIImages) > 1 {
		timelapsePath := filepath.Join(properties.ResultPath(), "ndvi_timelapse.avi")
		if err := output.CreateTimelapse(s.NDVIImages, timelapsePath); err != nil {
			logrus.WithField("error", err).Warn("failed to render timelapse")
		} else {
			written = append(written, timelapsePath)
		}
	}

	if len(s.Footprints) > 0 {
		geojsonPath := filepath.Join(properties.ResultPath(), "footprints.geojson")
		if err := output.CreateFootprintGeoJSON(s.Footprints, geojsonPath); err != nil {
			logrus.WithField("error", err).Warn("failed to write footprints")
		} else {
			written = append(written, geojsonPath)
		}
	}

	return written, nil
}
