// Package tui provides the terminal board for editing a strategy.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/tui/theme"
	"github.com/javiermolinar/strategr/internal/tui/view"
)

// Styles holds all lipgloss styles for the board, derived from a theme.
type Styles struct {
	palette *theme.Palette

	Bg lipgloss.Color

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	DirtyStyle    lipgloss.Style

	TimeColumnStyle   lipgloss.Style
	GutterStyle       lipgloss.Style
	CursorGutterStyle lipgloss.Style
	EmptyCellStyle    lipgloss.Style
	SelectedStyle     lipgloss.Style

	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	PromptStyle      lipgloss.Style
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg)

	return &Styles{
		palette: p,
		Bg:      p.Bg,

		TitleStyle:    base.Foreground(p.Accent).Bold(true),
		SubtitleStyle: base.Foreground(p.FgMuted),
		DirtyStyle:    base.Foreground(p.Warning).Bold(true),

		TimeColumnStyle:   base.Foreground(p.FgMuted),
		GutterStyle:       base,
		CursorGutterStyle: base.Foreground(p.Cursor).Bold(true),
		EmptyCellStyle:    lipgloss.NewStyle().Background(p.BgHighlight).Foreground(p.FgMuted),
		SelectedStyle:     lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.Fg).Bold(true),

		StatusStyle:      base.Foreground(p.Fg),
		StatusErrorStyle: base.Foreground(p.Warning),
		PromptStyle:      base.Foreground(p.Accent),
		HelpKeyStyle:     base.Foreground(p.Accent),
		HelpDescStyle:    base.Foreground(p.FgMuted),
	}
}

// RowStyles returns the styles for a group assigned to slot.
// The group under the cursor uses the alternate shade.
func (s *Styles) RowStyles(slot strategy.Slot, cursor bool) view.RowStyles {
	rs := view.RowStyles{
		Gutter:       s.GutterStyle,
		CursorGutter: s.CursorGutterStyle,
		Time:         s.TimeColumnStyle,
		Body:         s.EmptyCellStyle,
		Selected:     s.SelectedStyle,
	}

	a, ok := slot.Activity()
	if !ok {
		return rs
	}
	block := s.palette.Block(a.Color)
	bg := block.Bg
	if cursor {
		bg = block.BgAlt
	}
	rs.Body = lipgloss.NewStyle().Background(bg).Foreground(block.Fg)
	return rs
}

// SwatchStyle returns the style for an activity's legend entry.
func (s *Styles) SwatchStyle(a strategy.Activity) lipgloss.Style {
	block := s.palette.Block(a.Color)
	return lipgloss.NewStyle().Background(block.Swatch).Foreground(block.OnSwatch)
}
