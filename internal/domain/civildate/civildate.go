// Package civildate parses and compares the DD/MM/YYYY calendar dates used
// across the records document. Every temporal rule goes through here.
package civildate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"siged/internal/domain/domainerr"
)

const Layout = "02/01/2006"

var reDate = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/([0-9]{4})$`)

var (
	ErrInvalid = domainerr.Validation("invalid_date", "date", "date must be a real calendar date in format DD/MM/YYYY")
	ErrFuture  = domainerr.Validation("future_date", "date", "date cannot be in the future")
)

// Date is a day/month/year triple. The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Parse accepts only DD/MM/YYYY naming a real calendar day (31/02/2024 fails).
func Parse(text string) (Date, error) {
	m := reDate.FindStringSubmatch(text)
	if m == nil {
		return Date{}, ErrInvalid
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return Date{}, ErrInvalid
	}
	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// ParsePast parses text and rejects dates after today.
func ParsePast(text string, today Date) (Date, error) {
	d, err := Parse(text)
	if err != nil {
		return Date{}, err
	}
	if d.IsFutureRelativeTo(today) {
		return Date{}, ErrFuture
	}
	return d, nil
}

// ParsePastField is ParsePast reporting failures against field.
func ParsePastField(text, field string, today Date) (Date, error) {
	d, err := Parse(text)
	if err != nil {
		return Date{}, domainerr.OnField(ErrInvalid, field)
	}
	if d.IsFutureRelativeTo(today) {
		return Date{}, domainerr.OnField(ErrFuture, field)
	}
	return d, nil
}

// Today is the civil date of now in now's own location.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) key() int { return d.Year*10000 + int(d.Month)*100 + d.Day }

// IsOnOrAfter reports d >= other.
func (d Date) IsOnOrAfter(other Date) bool { return d.key() >= other.key() }

func (d Date) IsFutureRelativeTo(today Date) bool { return d.key() > today.key() }

// MonthKey buckets a date by month and year.
func (d Date) MonthKey() MonthKey { return MonthKey{Year: d.Year, Month: d.Month} }

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

type MonthKey struct {
	Year  int
	Month time.Month
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("civildate: %q: %w", s, err)
	}
	*d = v
	return nil
}
