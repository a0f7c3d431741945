package ui

import "fmt"

// ShowInfo prints the usage guide and the project motive.
func ShowInfo() {
	fmt.Println("\033[32m\nHow to Use GreenVision\033[0m")
	fmt.Println("\033[34m- Load the sample dataset to quickly analyze sample NDVI images from different years for the same location.\033[0m")
	fmt.Println("\033[34m- Alternatively, analyze your own GeoTIFF NDVI images.\033[0m")
	fmt.Println("\033[34m- The app visualizes the input images (as False Color Composite if available) alongside NDVI maps.\033[0m")
	fmt.Println("\033[34m- NDVI statistics (Min, Max, Mean) are shown to help you interpret vegetation health.\033[0m")
	fmt.Println("\033[32m\nProject Motive\033[0m")
	fmt.Println("\033[34mThis app helps you check vegetation differences of the same place over different points in time, enabling monitoring of vegetation health, crop growth, or environmental change.\033[0m")
}
