// Package dates provides the date-only wire type used by the API.
// The backend serializes calendar dates as "2006-01-02" strings rather
// than full RFC 3339 timestamps.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Date is a calendar date with no time component.
type Date struct {
	time.Time
}

// New creates a Date from year, month, and day in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in UTC.
func Today() Date {
	return Of(time.Now().UTC())
}

// Of truncates t to its calendar date.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse reads a date in wire format.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String formats the date in wire format.
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON encodes the date as a "2006-01-02" string, or null for the
// zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a "2006-01-02" string or null. Timestamps with a
// time component are accepted and truncated.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}

	if parsed, err := Parse(s); err == nil {
		*d = parsed
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = Of(t)
	return nil
}
