package duration

import (
	"testing"
	"time"
)

func TestBefore(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		wantErr bool
		want    time.Time
	}{
		{"90s", false, now.Add(-90 * time.Second)},
		{"5m", false, now.Add(-5 * time.Minute)},
		{"1h", false, now.Add(-time.Hour)},
		{"3hours", false, now.Add(-3 * time.Hour)},
		{"1d", false, time.Date(2024, 3, 30, 12, 0, 0, 0, time.UTC)},
		{"1w", false, time.Date(2024, 3, 24, 12, 0, 0, 0, time.UTC)},
		{"30d", false, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{"1mo", false, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)},
		{"13months", false, time.Date(2023, 2, 28, 12, 0, 0, 0, time.UTC)},
		{"1y", false, time.Date(2023, 3, 31, 12, 0, 0, 0, time.UTC)},
		{"0m", false, now},
		{"invalid", true, time.Time{}},
		{"5x", true, time.Time{}},
		{"-2d", true, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Before(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Equal(tt.want) {
				t.Errorf("Before(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
