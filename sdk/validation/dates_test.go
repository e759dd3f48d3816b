package validation_test

import (
	"testing"
	"time"

	"github.com/jrazmi/taskdeck/sdk/validation"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2025-06-01T10:30:00Z", time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", "2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"datetime no zone", "2025-06-01T10:30:00", time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)},
		{"us slashes", "06/01/2025", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"us dashes", "06-01-2025", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"iso slashes", "2025/06/01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ParseFlexibleDate(tt.input)
			if err != nil {
				t.Fatalf("ParseFlexibleDate(%q): %s", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseFlexibleDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFlexibleDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2025-13-40", "01/02/03/04"} {
		if _, err := validation.ParseFlexibleDate(input); err == nil {
			t.Errorf("ParseFlexibleDate(%q): expected an error", input)
		}
	}
}
