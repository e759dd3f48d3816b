package validation

import (
	"fmt"
	"time"
)

// ParseFlexibleDate tries to parse a date string using multiple common formats
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	formats := []string{
		time.RFC3339,  // ISO 8601 with time
		time.DateOnly, // YYYY-MM-DD
		"2006-01-02T15:04:05", // ISO 8601 without zone
		"01/02/2006",  // MM/DD/YYYY (4-digit year)
		"01-02-2006",  // MM-DD-YYYY
		"2006/01/02",  // YYYY/MM/DD
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
