package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatCNIC normalises raw input to the 42101-1234567-8 layout, the same
// progressive formatting the booking form applies while typing.
func FormatCNIC(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 13 {
		d = d[:13]
	}

	switch {
	case len(d) <= 5:
		return d
	case len(d) <= 12:
		return d[:5] + "-" + d[5:]
	default:
		return d[:5] + "-" + d[5:12] + "-" + d[12:]
	}
}

// CombineDateTime joins a date (2006-01-02) and a wall-clock time (15:04)
// into one UTC instant.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", fmt.Sprintf("%s %s", date, clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}
