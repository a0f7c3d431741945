package ui

import (
	"fmt"
	"path/filepath"

	"github.com/tanishpoddar/GreenVision/internal/delivery"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/sampledata"
)

// LoadSamples downloads the bundled sample rasters and analyzes them as a
// series.
func LoadSamples() {
	PrintInfo("Downloading and processing sample files...\n")

	dir := filepath.Join(properties.DataPath(), "samples")
	paths, err := sampledata.Fetch(dir, sampledata.Samples)
	if err != nil {
		PrintError(err.Error())
		return
	}
	if len(paths) == 0 {
		PrintError("No sample files could be downloaded.")
		return
	}
	if missing := len(sampledata.Samples) - len(paths); missing > 0 {
		PrintWarning(fmt.Sprintf("%d of %d sample files could not be downloaded.", missing, len(sampledata.Samples)))
	}

	analyzed, err := session.AnalyzeFiles(paths, delivery.AnalyzeOptions{})
	if err != nil {
		PrintError(err.Error())
		return
	}
	if analyzed == 0 {
		PrintError("No sample files could be analyzed.")
		return
	}

	PrintSuccess(fmt.Sprintf("Loaded %d sample images!", analyzed))
	ViewTable()
}
