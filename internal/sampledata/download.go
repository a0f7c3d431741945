package sampledata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"golang.org/x/oauth2/clientcredentials"
)

// SampleFile is one entry of the bundled sample registry.
type SampleFile struct {
	Name string
	URL  string
}

// Samples are NDVI rasters of the same location across four years, hosted
// on Google Drive.
var Samples = []SampleFile{
	{Name: "NDVI 2020.tif", URL: "https://drive.google.com/uc?id=164vS6ClPCFVJ55pLy12JXLvQqfW-9agC"},
	{Name: "NDVI 2021.tif", URL: "https://drive.google.com/uc?id=1ILymexmwaWvi0c0ebLtak02lO9XDRcY2"},
	{Name: "NDVI 2022.tif", URL: "https://drive.google.com/uc?id=1487Cl3DUCve7-ftNX_ZWh4U_IGDuCqX9"},
	{Name: "NDVI 2023.tif", URL: "https://drive.google.com/uc?id=1mrKn8fFm20fO62pluDS_t19qQ3WtdMg1"},
}

// Fetch downloads the given samples into dir, reusing files already on
// disk. Every missing file gets exactly one download attempt; a failure
// logs a warning and the remaining files still download. The returned
// paths keep the registry order and contain only the files now present.
func Fetch(dir string, samples []SampleFile) ([]string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create sample directory: %w", err)
	}

	client := newHTTPClient(properties.Get().Samples)
	progressBar := progressbar.Default(int64(len(samples)), "Downloading sample data")

	paths := []string{}
	for _, sample := range samples {
		destination := filepath.Join(dir, sample.Name)

		if _, err := os.Stat(destination); err == nil {
			logrus.WithField("file", sample.Name).Debug("sample already downloaded")
			paths = append(paths, destination)
			progressBar.Add(1)
			continue
		}

		if err := download(client, sample.URL, destination); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  sample.Name,
				"error": err,
			}).Warn("failed to download sample, skipping it")
			progressBar.Add(1)
			continue
		}

		paths = append(paths, destination)
		progressBar.Add(1)
	}
	progressBar.Finish()

	return paths, nil
}

func newHTTPClient(cfg properties.SamplesConfig) *http.Client {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.TokenURL == "" {
		return &http.Client{Timeout: 2 * time.Minute}
	}

	config := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	return config.Client(context.Background())
}

func download(client *http.Client, url, destination string) error {
	response, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to request sample: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download sample, status code: %d", response.StatusCode)
	}

	tmpFile := destination + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}

	if _, err := io.Copy(file, response.Body); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	file.Close()

	if err := os.Rename(tmpFile, destination); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to move sample file into place: %w", err)
	}

	return nil
}
