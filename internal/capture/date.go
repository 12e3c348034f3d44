package capture

import (
	"fmt"
	"time"
)

const (
	compactLayout = "20060102"
	isoLayout     = "2006-01-02"
)

// Date is a calendar day with no time or zone. The zero value means "no date";
// every other value is a real calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the components and returns the date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("year %d out of range", year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseCompact parses YYYYMMDD.
func ParseCompact(value string) (Date, error) {
	return parseLayout(compactLayout, value)
}

// ParseISO parses YYYY-MM-DD.
func ParseISO(value string) (Date, error) {
	return parseLayout(isoLayout, value)
}

func parseLayout(layout, value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, err
	}
	return fromTime(t)
}

func fromTime(t time.Time) (Date, error) {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsZero reports whether d carries no date.
func (d Date) IsZero() bool { return d == Date{} }

// Compact renders YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ISO renders YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// YearString renders YYYY.
func (d Date) YearString() string {
	return fmt.Sprintf("%04d", d.Year)
}

func (d Date) String() string { return d.ISO() }
