package brush

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Interval is a snapping policy for x values.
type Interval interface {
	// Round snaps v to the nearest grid point.
	Round(v float64) float64

	// Offset advances v by count grid units (count may be negative).
	Offset(v float64, count int) float64
}

// Step is a fixed numeric grid.
type Step float64

func (s Step) Round(v float64) float64 {
	return float64(s) * math.Round(v/float64(s))
}

func (s Step) Offset(v float64, count int) float64 {
	return v + float64(s)*float64(count)
}

func (s Step) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// CalendarUnit is the grid unit of a Calendar interval.
type CalendarUnit int

const (
	Second CalendarUnit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var calendarUnitNames = map[CalendarUnit]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

func (u CalendarUnit) String() string {
	if name, ok := calendarUnitNames[u]; ok {
		return name
	}
	return "CalendarUnit(" + strconv.Itoa(int(u)) + ")"
}

// Calendar snaps x values holding Unix seconds to calendar boundaries.
//
// Weeks start on Monday. A nil Location means UTC.
type Calendar struct {
	Unit     CalendarUnit
	Location *time.Location
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Calendar) toTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).In(c.loc())
}

func fromTime(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// floor truncates t to the start of its unit.
func (c Calendar) floor(t time.Time) time.Time {
	y, mo, d := t.Date()
	switch c.Unit {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, t.Location())
	case Hour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, t.Location())
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
	case Week:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, mo, d-back, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	}
}

func (c Calendar) add(t time.Time, n int) time.Time {
	switch c.Unit {
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

// Round snaps v to the nearer unit boundary; ties round up.
func (c Calendar) Round(v float64) float64 {
	t := c.toTime(v)
	lo := c.floor(t)
	if lo.Equal(t) {
		return fromTime(lo)
	}
	hi := c.add(lo, 1)
	if t.Sub(lo) < hi.Sub(t) {
		return fromTime(lo)
	}
	return fromTime(hi)
}

func (c Calendar) Offset(v float64, count int) float64 {
	return fromTime(c.add(c.toTime(v), count))
}

func (c Calendar) String() string {
	return c.Unit.String()
}

// DefaultInterval is one day for time series and a unit step otherwise.
func DefaultInterval(timeSeries bool) Interval {
	if timeSeries {
		return Calendar{Unit: Day}
	}
	return Step(1)
}

// ParseInterval parses a brushing interval setting.
//
// The empty string selects DefaultInterval. A number selects a Step, and a
// unit name ("second" through "year") selects a Calendar in UTC.
func ParseInterval(s string, timeSeries bool) (Interval, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultInterval(timeSeries), nil
	}
	for unit, name := range calendarUnitNames {
		if s == name || s == name+"s" {
			return Calendar{Unit: unit}, nil
		}
	}
	step, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	if !isFinite(step) || step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %v", ErrInvalidInterval, step)
	}
	return Step(step), nil
}

// floorTo returns the largest grid point <= v.
func floorTo(iv Interval, v float64) float64 {
	r := iv.Round(v)
	if r > v {
		r = iv.Offset(r, -1)
	}
	return r
}

// ceilTo returns the smallest grid point >= v.
func ceilTo(iv Interval, v float64) float64 {
	r := iv.Round(v)
	if r < v {
		r = iv.Offset(r, 1)
	}
	return r
}
