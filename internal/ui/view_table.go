package ui

import (
	"fmt"

	"github.com/tanishpoddar/GreenVision/internal/ndvi"
	"github.com/tanishpoddar/GreenVision/internal/report"
)

// ViewTable prints the session statistics, one line per analyzed image in
// series order.
func ViewTable() {
	if session.Series.Len() == 0 {
		PrintWarning("No images analyzed yet.")
		return
	}

	rows := report.FromSeries(session.Series)

	fmt.Printf("\n%s%-28s %8s %8s %8s %8s  %s%s\n", ColorGreen, "Image Name", "Min", "Max", "Mean", "Delta", "Interpretation", ColorReset)
	for _, row := range rows {
		fmt.Printf("%s%-28s %8s %8s %8s %8s  %s%s\n",
			ColorGreen,
			row.Image,
			ndvi.FormatValue(row.NDVIMin),
			ndvi.FormatValue(row.NDVIMax),
			ndvi.FormatValue(row.NDVIMean),
			ndvi.FormatValue(row.MeanDelta),
			row.MeanDesc,
			ColorReset,
		)
	}
}
