package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/tanishpoddar/GreenVision/internal/ndvi"
	"github.com/tanishpoddar/GreenVision/internal/series"
	"github.com/tanishpoddar/GreenVision/internal/utils"
)

// Row is one line of the statistics report. Nil statistics export as empty
// cells so a fully masked image never reads as zero.
type Row struct {
	Image       string   `csv:"image"`
	NDVIMin     *float64 `csv:"ndvi_min"`
	NDVIMax     *float64 `csv:"ndvi_max"`
	NDVIMean    *float64 `csv:"ndvi_mean"`
	MeanDelta   *float64 `csv:"mean_delta"`
	MinDesc     string   `csv:"min_desc"`
	MaxDesc     string   `csv:"max_desc"`
	MeanDesc    string   `csv:"mean_desc"`
	ValidPixels int      `csv:"valid_pixels"`
	TotalPixels int      `csv:"total_pixels"`
}

// FromSeries builds report rows from the session series, in input order,
// with values rounded to the three-decimal reporting precision.
func FromSeries(ts *series.TimeSeries) []Row {
	deltas := ts.MeanDeltas()
	rows := make([]Row, 0, ts.Len())
	for i, entry := range ts.Entries() {
		rows = append(rows, Row{
			Image:       entry.Label,
			NDVIMin:     utils.Round3Ptr(entry.Stats.Min),
			NDVIMax:     utils.Round3Ptr(entry.Stats.Max),
			NDVIMean:    utils.Round3Ptr(entry.Stats.Mean),
			MeanDelta:   utils.Round3Ptr(deltas[i]),
			MinDesc:     ndvi.ClassifyPtr(entry.Stats.Min),
			MaxDesc:     ndvi.ClassifyPtr(entry.Stats.Max),
			MeanDesc:    ndvi.ClassifyPtr(entry.Stats.Mean),
			ValidPixels: entry.Stats.ValidPixels,
			TotalPixels: entry.Stats.TotalPixels,
		})
	}
	return rows
}

// SaveCSV writes the report rows to a CSV file.
func SaveCSV(rows []Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no report rows to save")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to save report to file: %w", err)
	}

	return nil
}

// LoadCSV reads back a previously saved report.
func LoadCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}
	defer file.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	return rows, nil
}
