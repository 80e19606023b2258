package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitlit/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FormatISO renders t as an ISO-8601 UTC timestamp with milliseconds.
func FormatISO(t time.Time) string {
	return t.UTC().Format(constants.ISOTimestampFormat)
}

// ParseISO accepts FormatISO output and any RFC 3339 timestamp.
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(constants.ISOTimestampFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// FormatLongDate renders the header date, e.g. "Friday, March 1, 2024".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
