package payroll

import (
	"fmt"
	"strings"
	"time"
)

// zone-less layouts are read in the calendar location
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses an ISO-8601 timestamp. Values carrying an offset are converted
// into loc; values without one are interpreted in loc.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp format")
}
