// Package view provides rendering helpers for the strategy board.
package view

import (
	"fmt"

	"github.com/javiermolinar/strategr/internal/strategy"
)

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// ClockRange formats a span of minutes from midnight as "HH:MM-HH:MM".
// Times past midnight wrap around.
func ClockRange(begin, end int) string {
	return strategy.MinutesToTime(begin) + "-" + strategy.MinutesToTime(end)
}
