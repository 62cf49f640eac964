package model

import (
	"fmt"
	"strings"
	"time"
)

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var weekDays = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Days returns the canonical week order, Monday through Sunday.
func Days() []Day {
	out := make([]Day, len(weekDays))
	copy(out, weekDays[:])
	return out
}

func (d Day) IsValid() bool {
	return d.Index() >= 0
}

// Index is the position in the canonical order, or -1.
func (d Day) Index() int {
	for i, day := range weekDays {
		if day == d {
			return i
		}
	}
	return -1
}

// Next wraps Sunday to Monday.
func (d Day) Next() Day {
	idx := d.Index()
	if idx < 0 {
		return Monday
	}
	return weekDays[(idx+1)%len(weekDays)]
}

// Prev wraps Monday to Sunday.
func (d Day) Prev() Day {
	idx := d.Index()
	if idx < 0 {
		return Monday
	}
	return weekDays[(idx+len(weekDays)-1)%len(weekDays)]
}

// Short is the three letter label used in narrow columns.
func (d Day) Short() string {
	s := string(d)
	if len(s) < 3 {
		return s
	}
	return s[:3]
}

// ParseDay accepts a day name in any case, or its three letter prefix.
func ParseDay(raw string) (Day, error) {
	in := strings.ToLower(strings.TrimSpace(raw))
	if in == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDay)
	}
	for _, d := range weekDays {
		name := strings.ToLower(string(d))
		if in == name || (len(in) == 3 && strings.HasPrefix(name, in)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, raw)
}

func DayOf(wd time.Weekday) Day {
	if wd == time.Sunday {
		return Sunday
	}
	return weekDays[int(wd)-1]
}

// Today is the weekday of now in its location.
func Today(now time.Time) Day {
	return DayOf(now.Weekday())
}
