package model

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date representation used across the
// system.  Stay boundaries, birthdates and invoice issue dates are all
// exchanged and persisted as ISO calendar-date strings.
const DateLayout = "2006-01-02"

// ErrBadDate is returned when a supplied date cannot be interpreted as a
// calendar date in any accepted textual form.
var ErrBadDate = errors.New("invalid date")

// acceptedLayouts lists the textual forms a caller may supply for a date.
// Whatever the input form, dates are normalized to DateLayout before being
// stored, so the database only ever sees YYYY-MM-DD.
var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// NormalizeDate parses a date supplied in any accepted textual form and
// returns its canonical YYYY-MM-DD representation.  Time-of-day components
// are discarded.  ErrBadDate is returned for unparseable input.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrBadDate
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", ErrBadDate
}

// parseDay returns the canonical date as a time at midnight UTC.  A zero
// time is returned for dates that do not parse; callers treat that as an
// empty boundary.
func parseDay(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
