package output

import (
	"fmt"
	"os"

	"github.com/tanishpoddar/GreenVision/internal/series"
	"github.com/wcharczuk/go-chart/v2"
)

// CreateTrendChart draws the mean NDVI of every image in the series as a
// line chart, in series order. Images whose statistics are missing leave a
// gap in the line but keep their tick on the axis.
func CreateTrendChart(ts *series.TimeSeries, outputPath string) error {
	entries := ts.Entries()
	if len(entries) < 2 {
		return fmt.Errorf("need at least 2 images to chart a trend, got %d", len(entries))
	}

	xValues := []float64{}
	yValues := []float64{}
	ticks := []chart.Tick{}
	for i, entry := range entries {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: entry.Label})
		if entry.Stats.Mean == nil {
			continue
		}
		xValues = append(xValues, float64(i))
		yValues = append(yValues, *entry.Stats.Mean)
	}
	if len(yValues) == 0 {
		return fmt.Errorf("no valid mean values to chart")
	}

	yMin, yMax := yValues[0], yValues[0]
	for _, v := range yValues {
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}

	graph := chart.Chart{
		Title: "Mean NDVI Trend",
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(entries) - 1)},
		},
		YAxis: chart.YAxis{
			Name: "Mean NDVI",
			Range: &chart.ContinuousRange{
				Min: yMin - 0.05,
				Max: yMax + 0.05,
			},
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.3f")
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Mean NDVI",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2.0,
					DotColor:    chart.ColorGreen,
					DotWidth:    4.0,
				},
			},
		},
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer outputFile.Close()

	if err := graph.Render(chart.PNG, outputFile); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
