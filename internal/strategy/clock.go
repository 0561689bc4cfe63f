package strategy

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat is returned for clock strings that are not "HH:MM".
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// MinutesPerDay is 24 hours * 60 minutes.
const MinutesPerDay = 1440

// ParseClock converts a "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 {
		return 0, ErrInvalidTimeFormat
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	m, err := ParseClock(t)
	if err != nil {
		return 0
	}
	return m
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
// Values past midnight wrap around, so 1500 is "01:00".
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	m %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
