package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// KeyHelp describes one key binding for the help line.
type KeyHelp struct {
	Key  string
	Desc string
}

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width      int
	PromptLine string // Shown instead of the status line while prompting
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// RenderFooter renders the status (or prompt) and help lines.
func RenderFooter(state FooterViewState) string {
	first := state.StatusLine
	if state.PromptLine != "" {
		first = state.PromptLine
	}
	return PadLinesWithBackground(first+"\n"+state.HelpLine, state.Width, 2, state.Bg)
}

// HelpLine joins bindings into one line that fits width.
func HelpLine(keys []KeyHelp, width int, keyStyle, descStyle lipgloss.Style) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, keyStyle.Render(k.Key)+" "+descStyle.Render(k.Desc))
	}
	return ansi.Truncate(strings.Join(parts, descStyle.Render("  ")), width, "…")
}

// FullHelp lists bindings one per line with aligned descriptions.
func FullHelp(keys []KeyHelp, keyStyle, descStyle lipgloss.Style) string {
	keyWidth := 0
	for _, k := range keys {
		keyWidth = max(keyWidth, ansi.StringWidth(k.Key))
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, keyStyle.Render(pad(k.Key, keyWidth))+"  "+descStyle.Render(k.Desc))
	}
	return strings.Join(lines, "\n")
}

// PadLinesWithBackground pads content to width/height with a background color.
// Lines wider than width are truncated.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	paddingStyle := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Truncate(line, width, "")
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}
