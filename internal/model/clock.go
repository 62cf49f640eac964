package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrData marks task data the planner cannot place.
	ErrData             = errors.New("model: bad task data")
	ErrInvalidTime      = fmt.Errorf("%w: invalid time of day", ErrData)
	ErrNegativeDuration = fmt.Errorf("%w: end time before start time", ErrData)
)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

// ParseClock reads "HH:MM" in 24-hour form. A trailing ":SS" is accepted and
// ignored since browsers may send it from time inputs.
func ParseClock(raw string) (Clock, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	for _, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || len(parts[2]) != 2 || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
	}
	return Clock(h*60 + m), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Format12h renders the clock as "9:05 AM".
func (c Clock) Format12h() string {
	h := c.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, c.Minute(), suffix)
}

// HoursUntil is end minus c in fractional hours. It is negative when end is
// earlier in the day.
func (c Clock) HoursUntil(end Clock) float64 {
	return float64(end-c) / 60
}

// FormatTime12h formats raw "HH:MM" text, or returns "" when it does not parse.
func FormatTime12h(raw string) string {
	c, err := ParseClock(raw)
	if err != nil {
		return ""
	}
	return c.Format12h()
}
