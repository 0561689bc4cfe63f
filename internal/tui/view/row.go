package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	gutterWidth   = 2
	timeWidth     = len("00:00-00:00") + 1
	durationWidth = len("23h 45m") + 1
)

// Row is one activity group on the board.
type Row struct {
	Begin    int // Minutes from midnight
	End      int
	Label    string
	Minutes  int
	Cursor   bool
	Selected bool
}

// RowStyles are the styles used to draw a Row.
type RowStyles struct {
	Gutter       lipgloss.Style
	CursorGutter lipgloss.Style
	Time         lipgloss.Style
	Body         lipgloss.Style
	Selected     lipgloss.Style
}

// RenderRow draws row in exactly width cells.
func RenderRow(row Row, width int, styles RowStyles) string {
	gutter := styles.Gutter.Render(strings.Repeat(" ", gutterWidth))
	if row.Cursor {
		gutter = styles.CursorGutter.Render(">" + strings.Repeat(" ", gutterWidth-1))
	}

	timeCol := styles.Time.Render(pad(ClockRange(row.Begin, row.End), timeWidth))

	bodyWidth := width - gutterWidth - timeWidth
	if bodyWidth <= 0 {
		return ansi.Truncate(gutter+timeCol, width, "")
	}

	duration := FormatDuration(row.Minutes)
	labelWidth := bodyWidth - durationWidth
	var body string
	if labelWidth > 1 {
		body = " " + pad(ansi.Truncate(row.Label, labelWidth-1, "…"), labelWidth-1) + padLeft(duration, durationWidth)
	} else {
		body = pad(ansi.Truncate(row.Label, bodyWidth, "…"), bodyWidth)
	}

	bodyStyle := styles.Body
	if row.Selected {
		bodyStyle = styles.Selected
	}
	return gutter + timeCol + bodyStyle.Render(body)
}

// pad right-pads s with spaces to width cells.
func pad(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w-1) + s + " "
}
