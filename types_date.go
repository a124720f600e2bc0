package hsa

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// statement date formats, four digit years are tried first.
var statementDateFormats = []string{"1/2/2006", "1/2/06"}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// DaysUntil returns the number of days from d to x, negative if x is before d.
func (d Date) DaysUntil(x Date) int { return int(x.time().Sub(d.time()).Hours() / 24) }

// IsLeapDay reports whether d is February 29.
func (d Date) IsLeapDay() bool { return d.m == time.February && d.d == 29 }

// addMonths adds n months to d, clamping the day to the last day of the
// resulting month (January 31 plus one month is February 28 or 29).
func (d Date) addMonths(n int) Date {
	total := d.y*12 + int(d.m-1) + n
	y, m := total/12, time.Month(total%12+1)
	last := NewDate(y, m+1, 0).Day()
	return NewDate(y, m, min(d.d, last))
}

// Between returns the calendar period from 'from' to 'to' as whole years,
// remaining months and remaining days.
//
// The day component never borrows more than one month: when the day of 'to'
// is before the day of 'from', one month is taken back and the days are
// counted from the clamped intermediate date. All components are negative
// when 'to' is before 'from'.
func Between(from, to Date) (years, months, days int) {
	totalMonths := (to.y*12 + int(to.m)) - (from.y*12 + int(from.m))
	days = to.d - from.d
	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		days = from.addMonths(totalMonths).DaysUntil(to)
	case totalMonths < 0 && days > 0:
		totalMonths++
		days = from.addMonths(totalMonths).DaysUntil(to)
	}
	return totalMonths / 12, totalMonths % 12, days
}

// ParseDate parses a Date from a string.
//
// It accepts ISO dates, leniently ("2025-7-1"), and the statement formats
// "7/1/2025" and "7/1/25".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	if strings.Contains(str, "/") {
		for _, layout := range statementDateFormats {
			on, err := time.Parse(layout, str)
			if err == nil {
				return NewDate(on.Date()), nil
			}
		}
		return Date{}, fmt.Errorf("invalid date %q want format %q", str, statementDateFormats[0])
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	*j = NewDate(on.Date())
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	var str string
	if !j.IsZero() {
		str = j.String()
	}
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
