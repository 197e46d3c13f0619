// utils/timeutil.go
package utils

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout      = "2006-01-02"
	ExportTimestamp = "20060102_150405"
)

// DateOf converts a stored date column to a time.Time at UTC midnight.
func DateOf(d datatypes.Date) time.Time {
	t := time.Time(d)
	if t.IsZero() {
		return time.Time{}
	}
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD. Returns "" for the zero time to let
// templates decide how to show a missing birthday.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// MustDate parses a YYYY-MM-DD literal; used for fixtures and seed data.
func MustDate(s string) datatypes.Date {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(t)
}
