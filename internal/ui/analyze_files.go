package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tanishpoddar/GreenVision/internal/delivery"
	"github.com/tanishpoddar/GreenVision/internal/properties"
)

// AnalyzeFiles handles the UI for analyzing GeoTIFF files supplied by the
// operator.
func AnalyzeFiles() {
	PrintWarning("- Files are analyzed in the order they are entered; that order is the timeline.\n- A single-band file is read as a pre-computed NDVI product.")

	input := ReadString("Enter the GeoTIFF paths, separated by commas: ")
	if input == "" {
		PrintError("No files given.")
		return
	}

	paths := []string{}
	for _, part := range strings.Split(input, ",") {
		if path := strings.TrimSpace(part); path != "" {
			paths = append(paths, path)
		}
	}

	opts, err := readBandOptions()
	if err != nil {
		PrintError(err.Error())
		return
	}

	analyzed, err := session.AnalyzeFiles(paths, opts)
	if err != nil {
		PrintError(err.Error())
		return
	}

	if failed := len(paths) - analyzed; failed > 0 {
		PrintWarning(fmt.Sprintf("%d of %d files could not be analyzed and were skipped.", failed, len(paths)))
	}
	if analyzed == 0 {
		return
	}

	PrintSuccess(fmt.Sprintf("Analyzed %d files!\n NDVI maps located at: %s", analyzed, properties.ResultPath()))
	ViewTable()
}

// readBandOptions lets the operator pick an explicit RED,NIR band pair
// instead of reading band 1 as a pre-computed index.
func readBandOptions() (delivery.AnalyzeOptions, error) {
	input := ReadString("Enter RED,NIR band numbers to compute NDVI, or press Enter to read band 1: ")
	if input == "" {
		return delivery.AnalyzeOptions{}, nil
	}

	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return delivery.AnalyzeOptions{}, fmt.Errorf("invalid band pair: %s. Please use RED,NIR", input)
	}

	red, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || red < 1 {
		return delivery.AnalyzeOptions{}, fmt.Errorf("invalid red band: %s", strings.TrimSpace(parts[0]))
	}
	nir, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || nir < 1 {
		return delivery.AnalyzeOptions{}, fmt.Errorf("invalid NIR band: %s", strings.TrimSpace(parts[1]))
	}

	return delivery.AnalyzeOptions{RedBand: red, NIRBand: nir}, nil
}
