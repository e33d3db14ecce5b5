// Package jalali converts between Jalali (Persian) calendar date strings in
// the form YYYY/MM/DD and the Gregorian dates used for storage.
package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// ErrInvalidDate signals a user-input error: the string does not match the
// YYYY/MM/DD pattern or does not denote a real Jalali date.
var ErrInvalidDate = fmt.Errorf("invalid jalali date")

// Parse converts a Jalali date string to a Gregorian date at UTC midnight.
// Day 31 of a 30-day month, month 13 and similar non-dates are rejected
// rather than normalized.
func Parse(value string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	// ptime normalizes out-of-range components the way time.Date does, so an
	// invalid date is detected by reading the fields back.
	pt := ptime.Date(year, ptime.Month(month), day, 12, 0, 0, 0, ptime.Iran())
	if pt.Year() != year || int(pt.Month()) != month || pt.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	g := pt.Time()
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Format converts a stored Gregorian date back to the Jalali YYYY/MM/DD
// string shown to users. Zero times format as an empty string.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	pt := ptime.New(time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, ptime.Iran()))
	return fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
}
