// Package types implements special types for the automacao-pmo backend.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year. It is the key type for
// everything that aggregates planned or logged hours per month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Ano returns the year of the month.
func (m Month) Ano() int {
	return time.Time(m).Year()
}

// Mes returns the calendar month as a number from 1 to 12.
func (m Month) Mes() int {
	return int(time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// Months are represented as "YYYY-MM" strings in all API payloads.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for "YYYY-MM" strings.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// FirstDay returns the first day of the month as a time.Time in UTC.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Ano(), time.Month(m.Mes()), 1, 0, 0, 0, 0, time.UTC)
}

// Sequence returns every month from m to end inclusive, in ascending order.
// It returns an empty slice when end is before m. Reporting windows must be
// contiguous, so consumers iterate this instead of the sparse set of months
// that happen to have data.
func (m Month) Sequence(end Month) []Month {
	months := make([]Month, 0)
	for current := m; !current.After(end); current = current.AddDate(0, 1) {
		months = append(months, current)
	}

	return months
}
