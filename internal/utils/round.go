package utils

import "math"

// Round3 rounds a value to three decimal places, the precision statistics
// are reported and exported at.
func Round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// Round3Ptr rounds through a nil-able value, preserving missing values.
func Round3Ptr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := Round3(*value)
	return &rounded
}
