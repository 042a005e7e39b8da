package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// NewDate returns the calendar date y-m-d, stored as midnight UTC.
func NewDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// DateOf returns the calendar date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) datatypes.Date {
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

// AddDays shifts a calendar date by n days.
func AddDays(d datatypes.Date, n int) datatypes.Date {
	y, m, day := time.Time(d).Date()
	return NewDate(y, m, day+n)
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// SameDate reports whether a and b are the same calendar date.
func SameDate(a, b datatypes.Date) bool {
	return FormatDate(a) == FormatDate(b)
}

// DateBefore reports whether a is strictly earlier than b.
func DateBefore(a, b datatypes.Date) bool {
	return FormatDate(a) < FormatDate(b)
}
