// models/dates.go
package models

import (
	"time"
)

// LogDateLayout is the YYYYMMDD layout used by the flight log.
const LogDateLayout = "20060102"

// DatePrecision tells how much of a partial date was given.
type DatePrecision int

const (
	PrecisionDay DatePrecision = iota
	PrecisionMonth
	PrecisionYear
)

// Layout returns the display layout for a date of this precision.
func (p DatePrecision) Layout() string {
	switch p {
	case PrecisionYear:
		return "2006"
	case PrecisionMonth:
		return "2006 Jan"
	default:
		return "2006 Jan 02"
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseLogDate parses the 8-digit date field of a flight log record.
func ParseLogDate(s string) (time.Time, error) {
	if len(s) != 8 || !allDigits(s) {
		return time.Time{}, &MalformedDateError{Field: "date", Value: s}
	}
	t, err := time.Parse(LogDateLayout, s)
	if err != nil {
		return time.Time{}, &MalformedDateError{Field: "date", Value: s}
	}
	return t, nil
}

// ParsePartialDate parses YYYYMMDD, YYYYMM or YYYY (the first_flight field).
// Missing parts are filled in mid-period: the 14th of the month, June 14th of the year.
func ParsePartialDate(field, s string) (time.Time, DatePrecision, error) {
	if !allDigits(s) {
		return time.Time{}, 0, &MalformedDateError{Field: field, Value: s}
	}

	var (
		t   time.Time
		p   DatePrecision
		err error
	)
	switch len(s) {
	case 8:
		t, err = time.Parse(LogDateLayout, s)
		p = PrecisionDay
	case 6:
		t, err = time.Parse("200601", s)
		t = t.AddDate(0, 0, 13)
		p = PrecisionMonth
	case 4:
		t, err = time.Parse("2006", s)
		t = time.Date(t.Year(), time.June, 14, 0, 0, 0, 0, time.UTC)
		p = PrecisionYear
	default:
		return time.Time{}, 0, &MalformedDateError{Field: field, Value: s}
	}
	if err != nil {
		return time.Time{}, 0, &MalformedDateError{Field: field, Value: s}
	}
	return t, p, nil
}
