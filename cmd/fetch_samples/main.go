package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/airbusgeo/godal"
	"github.com/joho/godotenv"
	"github.com/tanishpoddar/GreenVision/internal/geotiff"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/sampledata"
)

func main() {
	fmt.Println("=== GreenVision Sample Download ===")
	fmt.Printf("Registry entries: %d\n", len(sampledata.Samples))
	for _, sample := range sampledata.Samples {
		fmt.Printf("- %s\n", sample.Name)
	}
	fmt.Println()

	// Load environment variables
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		fmt.Println("Optional environment variables for protected mirrors:")
		fmt.Println("- SAMPLES_OAUTH_CLIENT_ID")
		fmt.Println("- SAMPLES_OAUTH_CLIENT_SECRET")
		fmt.Println("- SAMPLES_OAUTH_TOKEN_URL")
		fmt.Println("- ROOT_PATH")
		fmt.Println()
	}

	// Set ROOT_PATH if not already set
	if os.Getenv("ROOT_PATH") == "" {
		rootPath, err := os.Getwd()
		if err != nil {
			rootPath = "."
		}
		os.Setenv("ROOT_PATH", rootPath)
		fmt.Printf("Setting ROOT_PATH to: %s\n", rootPath)
	}

	if err := properties.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize GDAL
	godal.RegisterAll()

	sampleDir := filepath.Join(properties.DataPath(), "samples")
	fmt.Printf("Downloading samples to %s...\n", sampleDir)

	paths, err := sampledata.Fetch(sampleDir, sampledata.Samples)
	if err != nil {
		log.Fatalf("Failed to fetch samples: %v", err)
	}
	fmt.Println("✓ Download pass finished")

	// Display results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Samples available locally: %d\n", len(paths))

	if len(paths) == 0 {
		fmt.Println("No samples were downloaded. This could mean:")
		fmt.Println("- The mirror is unreachable from this network")
		fmt.Println("- The registry URLs are stale")
		fmt.Println("- Credentials are required but not configured")
	} else {
		fmt.Println("\nAvailable samples:")
		for _, path := range paths {
			fmt.Printf("- %s", filepath.Base(path))

			img, err := geotiff.Load(path)
			if err != nil {
				fmt.Printf(" (unreadable: %v)\n", err)
				continue
			}

			fmt.Printf(" (size: %dx%d)", img.Width, img.Height)
			fmt.Printf(" (bands: %d)", img.BandCount())
			if xMin, yMin, xMax, yMax, err := img.Bounds(); err == nil {
				fmt.Printf(" (bounds: %.6f, %.6f, %.6f, %.6f)", xMin, yMin, xMax, yMax)
			}
			fmt.Println()
		}
	}

	// Show file location
	fmt.Printf("\nSample files saved to: %s\n", sampleDir)

	// Check if any files exist in the directory
	if entries, err := os.ReadDir(sampleDir); err == nil {
		fmt.Printf("Files in directory: %d\n", len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				fmt.Printf("- %s\n", entry.Name())
			}
		}
	}

	fmt.Println("\n✓ Sample download completed successfully!")
}
