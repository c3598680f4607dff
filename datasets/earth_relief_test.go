package datasets

import (
	"errors"
	"testing"
)

func TestEarthRelief(t *testing.T) {
	tests := []struct {
		resolution string
		want       string
	}{
		{"01d", "@earth_relief_01d"},
		{"30m", "@earth_relief_30m"},
		{"06m", "@earth_relief_06m"},
		{"01m", "@earth_relief_01m"},
		{"30s", "@earth_relief_30s"},
		{"15s", "@earth_relief_15s"},
	}
	for _, tt := range tests {
		t.Run(tt.resolution, func(t *testing.T) {
			got, err := EarthRelief(tt.resolution)
			if err != nil {
				t.Fatalf("EarthRelief(%q) = %v", tt.resolution, err)
			}
			if got != tt.want {
				t.Errorf("EarthRelief(%q) = %q, want %q", tt.resolution, got, tt.want)
			}
		})
	}
}

func TestEarthReliefInvalidResolution(t *testing.T) {
	for _, resolution := range []string{"", "02d", "7m", "60s", "1d"} {
		t.Run(resolution, func(t *testing.T) {
			_, err := EarthRelief(resolution)
			var invalid *InvalidResolutionError
			if !errors.As(err, &invalid) {
				t.Fatalf("EarthRelief(%q) error = %v, want *InvalidResolutionError", resolution, err)
			}
			if invalid.Resolution != resolution {
				t.Errorf("InvalidResolutionError.Resolution = %q, want %q", invalid.Resolution, resolution)
			}
		})
	}
}
