package ui

import (
	"fmt"

	"github.com/tanishpoddar/GreenVision/internal/notification"
)

// ExportReport writes the XLSX and CSV reports plus the cross-image
// artifacts and prints where they landed.
func ExportReport() {
	xlsxPath, csvPath, err := session.ExportReport()
	if err != nil {
		PrintError(err.Error())
		return
	}

	artifacts, err := session.ExportArtifacts()
	if err != nil {
		PrintWarning(err.Error())
	}

	message := fmt.Sprintf("Report exported!\n XLSX located at: %s\n CSV located at: %s", xlsxPath, csvPath)
	for _, artifact := range artifacts {
		message += fmt.Sprintf("\n Artifact located at: %s", artifact)
	}

	PrintSuccess(message)
	notification.SendDiscordSuccessNotification(fmt.Sprintf("GreenVision\n\n%s", message))
}
