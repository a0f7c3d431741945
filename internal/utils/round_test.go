package utils

import "testing"

func TestRound3(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"no rounding needed", 0.25, 0.25},
		{"rounds down", 0.3641, 0.364},
		{"rounds up", 0.6667, 0.667},
		{"negative value", -0.1235, -0.124},
		{"zero", 0, 0},
		{"boundary", 0.9995, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round3(tt.value); got != tt.want {
				t.Errorf("Round3(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRound3Ptr(t *testing.T) {
	if got := Round3Ptr(nil); got != nil {
		t.Errorf("Round3Ptr(nil) = %v, want nil", got)
	}

	value := 0.12345
	got := Round3Ptr(&value)
	if got == nil || *got != 0.123 {
		t.Errorf("Round3Ptr(0.12345) = %v, want 0.123", got)
	}
}
