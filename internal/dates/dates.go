// Package dates formats and parses dates written with moment-style format
// strings such as "DD.MM.YYYY", the notation kanban boards store in their
// settings. Formatting and parsing are done by goment, a Go port of moment.
//
// Parsing is strict: the value must format back to exactly itself, so
// overflowing dates ("31.02.2025"), missing padding and trailing text are
// rejected.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/nleeper/goment"
)

// ErrInvalidDate indicates a value does not match its format.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidTime indicates a value is not a HH:MM clock time.
var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// Format renders t with a moment-style format.
func Format(t time.Time, format string) string {
	g, err := goment.New(t)
	if err != nil {
		return ""
	}
	return g.Format(format)
}

// Parse strictly parses value with a moment-style format.
func Parse(value, format string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value for %q", ErrInvalidDate, format)
	}
	g, err := goment.New(value, format)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %q: %v", ErrInvalidDate, value, format, err)
	}
	if got := g.Format(format); got != value {
		return time.Time{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidDate, value, format)
	}
	return g.ToTime(), nil
}

// Valid reports whether value parses with format.
func Valid(value, format string) bool {
	_, err := Parse(value, format)
	return err == nil
}

var clockRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a H:MM or HH:MM clock time.
func ParseClock(value string) (hours, minutes int, err error) {
	m := clockRe.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	hours, _ = strconv.Atoi(m[1])
	minutes, _ = strconv.Atoi(m[2])
	return hours, minutes, nil
}

// ValidClock reports whether value is a H:MM or HH:MM clock time.
func ValidClock(value string) bool {
	return clockRe.MatchString(value)
}

// FormatClock renders a clock time as HH:MM.
func FormatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Today renders the date of now with format.
func Today(now time.Time, format string) string {
	return Format(now, format)
}

// Now renders the clock time of now as HH:MM.
func Now(now time.Time) string {
	return FormatClock(now.Hour(), now.Minute())
}
