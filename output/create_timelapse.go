package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/icza/mjpeg"
)

// CreateTimelapse builds an MJPEG video from the given images, two frames
// per second, in the order the paths are given.
func CreateTimelapse(imagePaths []string, outputPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to assemble")
	}
	if !strings.Contains(outputPath, ".avi") {
		outputPath += ".avi"
	}

	firstImage, err := decodeImage(imagePaths[0])
	if err != nil {
		return err
	}
	bounds := firstImage.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	writer, err := mjpeg.New(outputPath, width, height, 2)
	if err != nil {
		return fmt.Errorf("failed to create video file: %w", err)
	}
	defer writer.Close()

	for _, path := range imagePaths {
		img, err := decodeImage(path)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("failed to encode frame: %w", err)
		}

		if err := writer.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to add frame: %w", err)
		}
	}

	return nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
