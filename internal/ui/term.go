package ui

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/strategr/internal/strategy"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for totals
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information and empty slots
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// disableColor turns color output off and returns a func restoring it.
func disableColor() (restore func()) {
	prev := color.NoColor
	color.NoColor = true
	return func() { color.NoColor = prev }
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for totals.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatActivity renders s in the activity's color, or plainly when the
// activity has no usable color.
func formatActivity(a strategy.Activity, s string) string {
	r, g, b, ok := hexRGB(a.Color)
	if !ok {
		return colorHeader.Sprint(s)
	}
	return color.RGB(r, g, b).Sprint(s)
}

// formatSwatch renders s on the activity's color.
func formatSwatch(a strategy.Activity, s string) string {
	r, g, b, ok := hexRGB(a.Color)
	if !ok {
		return s
	}
	return color.BgRGB(r, g, b).Sprint(s)
}

func hexRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
