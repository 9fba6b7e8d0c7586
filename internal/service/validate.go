package service

import (
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// dateLayouts are the accepted calendar-date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	model.DateLayout,
}

// parseDate attempts to parse a calendar date. Parsed dates are anchored
// to UTC midnight of the named day.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// resolveDate applies the date leniency policy: an absent or unparseable
// value falls back to now.
func resolveDate(value string, now func() time.Time) time.Time {
	if value == "" {
		return now()
	}
	if t, ok := parseDate(value); ok {
		return t
	}
	return now()
}
