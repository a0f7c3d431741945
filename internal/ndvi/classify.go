package ndvi

// Classify maps an NDVI value to its vegetation interpretation.
func Classify(value float64) string {
	if value < 0 {
		return "Non-vegetation (water, clouds, barren land)"
	} else if value < 0.2 {
		return "Very sparse or stressed vegetation"
	} else if value < 0.4 {
		return "Low to moderate vegetation"
	} else if value < 0.6 {
		return "Moderately healthy crops"
	}
	return "Healthy and dense vegetation"
}

// ClassifyPtr classifies through a nil-able statistic, answering "n/a" for
// missing values.
func ClassifyPtr(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return Classify(*value)
}
