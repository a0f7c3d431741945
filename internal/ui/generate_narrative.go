package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanishpoddar/GreenVision/internal/narrative"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/report"
)

// GenerateNarrative sends the statistics table to the configured text
// generation service and prints the summary.
func GenerateNarrative() {
	if session.Series.Len() == 0 {
		PrintWarning("No images analyzed yet.")
		return
	}

	service, err := narrative.NewService(properties.Get().Narrative)
	if err != nil {
		if errors.Is(err, narrative.ErrDisabled) {
			PrintWarning("The AI narrative is disabled. Set OPENAI_API_KEY to enable it.")
			return
		}
		PrintError(err.Error())
		return
	}

	rows := report.FromSeries(session.Series)
	summary, err := service.Summarize(context.Background(), rows)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to generate the narrative: %s", err.Error()))
		return
	}

	PrintSuccess("Narrative summary:")
	fmt.Println(summary)
}
