// Package utils holds the date codec shared by the pricing client and the
// row transformer. The remote calendar API encodes calendar dates as ddmmyy
// ("150326" is 15 March 2026); the store expects ISO 8601 dates.
package utils

import (
	"fmt"
	"time"
)

const (
	apiDateLayout = "020106"
	isoDateLayout = "2006-01-02"
)

// FormatAPIDate renders t in the remote API's ddmmyy encoding.
func FormatAPIDate(t time.Time) string {
	return t.Format(apiDateLayout)
}

// ParseAPIDate parses a ddmmyy date as sent by the remote API.
func ParseAPIDate(value string) (time.Time, error) {
	if len(value) != len(apiDateLayout) {
		return time.Time{}, fmt.Errorf("bad date %q: want 6 digits ddmmyy", value)
	}
	t, err := time.Parse(apiDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", value, err)
	}
	return t, nil
}

// ISODate renders t as a YYYY-MM-DD calendar date.
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// AddYears advances t by the given number of calendar years. A Feb 29
// start that lands on a non-leap year clamps to Feb 28 instead of rolling
// over into March.
func AddYears(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	year += years
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
