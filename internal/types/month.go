// Package types implements calendar types for the expense tracker.
package types

import (
	"fmt"
	"strings"
	"time"
)

// monthAbbreviations are used for month labels. They are fixed so that
// grouping by month does not depend on the locale of the host.
var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the month formatted as "Jan 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %04d", monthAbbreviations[time.Time(m).Month()-1], time.Time(m).Year())
}

// ParseLabel parses a label in the format returned by Label.
func ParseLabel(s string) (Month, error) {
	name, yearString, ok := strings.Cut(s, " ")
	if !ok {
		return Month{}, fmt.Errorf("month label %q is not in the format \"Jan 2006\"", s)
	}

	var year int
	if _, err := fmt.Sscanf(yearString, "%04d", &year); err != nil {
		return Month{}, fmt.Errorf("month label %q has an invalid year: %w", s, err)
	}

	for i, abbreviation := range monthAbbreviations {
		if abbreviation == name {
			return NewMonth(year, time.Month(i+1)), nil
		}
	}

	return Month{}, fmt.Errorf("month label %q has an unknown month", s)
}

// FirstDay returns the first day of the month.
func (m Month) FirstDay() Date {
	return Date(time.Time(m))
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return MonthOf(time.Time(d)).Equal(m)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}
