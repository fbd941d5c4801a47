package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDay = errors.New("invalid day")

const dayLayout = "2006-01-02"

// Day is a calendar date without a zone. It is comparable and safe to use as a map key.
type Day struct {
	year  int
	month time.Month
	dom   int
}

func NewDay(year int, month time.Month, dom int) Day {
	norm := time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
	return Day{year: norm.Year(), month: norm.Month(), dom: norm.Day()}
}

// DayOf returns the calendar date of t as observed in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	local := t.In(loc)
	return Day{year: local.Year(), month: local.Month(), dom: local.Day()}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return NewDay(t.Year(), t.Month(), t.Day()), nil
}

func (d Day) Year() int         { return d.year }
func (d Day) Month() time.Month { return d.month }
func (d Day) Dom() int          { return d.dom }
func (d Day) IsZero() bool      { return d.year == 0 && d.month == 0 && d.dom == 0 }

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.dom)
}

// At returns the instant at which tod occurs on d in loc.
func (d Day) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.dom, tod.Hour(), tod.Minute(), 0, 0, loc)
}

func (d Day) Midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.dom, 0, 0, 0, 0, loc)
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.dom+n)
}

func (d Day) Before(other Day) bool {
	return d.compare(other) < 0
}

func (d Day) After(other Day) bool {
	return d.compare(other) > 0
}

func (d Day) compare(other Day) int {
	switch {
	case d.year != other.year:
		return d.year - other.year
	case d.month != other.month:
		return int(d.month) - int(other.month)
	default:
		return d.dom - other.dom
	}
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
