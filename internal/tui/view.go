package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/summary"
	"github.com/javiermolinar/strategr/internal/tui/view"
)

const (
	headerLines = 2
	footerLines = 2
)

// View renders the board.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := m.renderRows()
	if m.mode == ModeHelp {
		body = view.FullHelp(keyHelp, m.styles.HelpKeyStyle, m.styles.HelpDescStyle)
	}

	sections := []string{
		m.renderHeader(),
		view.PadLinesWithBackground(body, m.width, m.visibleRows(), m.styles.Bg),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

// renderHeader renders the title and the activity legend.
func (m Model) renderHeader() string {
	st := m.session.strategy

	title := m.styles.TitleStyle.Render(" strategr ") + m.styles.SubtitleStyle.Render(m.name)
	if m.session.Dirty() {
		title += m.styles.DirtyStyle.Render("*")
	}
	timing := m.styles.SubtitleStyle.Render(fmt.Sprintf("%d%% planned  %s  %dm slots ",
		summary.Summarize(st).PlannedPercent(), view.ClockRange(st.BeginTime(), st.EndTime()), st.SlotDuration()))
	gap := m.width - ansi.StringWidth(title) - ansi.StringWidth(timing)
	titleLine := title
	if gap > 0 {
		titleLine += m.styles.GutterStyle.Render(strings.Repeat(" ", gap)) + timing
	}

	var legend strings.Builder
	legend.WriteString(m.styles.GutterStyle.Render(" "))
	for i, a := range st.Activities() {
		if i >= 9 {
			break
		}
		legend.WriteString(m.styles.SwatchStyle(a).Render(fmt.Sprintf(" %d %s ", i+1, a.Name)))
		legend.WriteString(m.styles.GutterStyle.Render(" "))
	}

	return view.PadLinesWithBackground(titleLine+"\n"+legend.String(), m.width, headerLines, m.styles.Bg)
}

// renderRows renders the visible activity groups.
func (m Model) renderRows() string {
	st := m.session.strategy
	groups := st.Group()
	selFrom, selTo := m.selectionRange()
	hasSelection := m.anchor != noSlot

	end := min(m.scroll+m.visibleRows(), len(groups))
	lines := make([]string, 0, max(end-m.scroll, 0))
	for g := m.scroll; g < end; g++ {
		start, last, _ := st.GroupRange(g)
		group := groups[g]

		label := "·"
		if a, ok := group.Activity(); ok {
			label = a.Name
		}
		cursor := m.cursor >= start && m.cursor <= last
		row := view.Row{
			Begin:    st.SlotBeginTime(start),
			End:      st.SlotBeginTime(last + 1),
			Label:    label,
			Minutes:  group.Length * st.SlotDuration(),
			Cursor:   cursor,
			Selected: hasSelection && start <= selTo && last >= selFrom,
		}
		lines = append(lines, view.RenderRow(row, m.width, m.styles.RowStyles(group.Slot, cursor)))
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the status or prompt line and the help line.
func (m Model) renderFooter() string {
	state := view.FooterViewState{
		Width:      m.width,
		StatusLine: m.statusLine(),
		HelpLine:   view.HelpLine(keyHelp, m.width, m.styles.HelpKeyStyle, m.styles.HelpDescStyle),
		Bg:         m.styles.Bg,
	}
	if m.mode == ModePrompt {
		state.PromptLine = m.prompt.View()
	}
	return view.RenderFooter(state)
}

// statusLine returns the status message, or the cursor position when idle.
func (m Model) statusLine() string {
	if m.statusMsg != "" {
		if m.statusErr {
			return m.styles.StatusErrorStyle.Render(" " + m.statusMsg)
		}
		return m.styles.StatusStyle.Render(" " + m.statusMsg)
	}

	st := m.session.strategy
	pos := fmt.Sprintf(" slot %d  %s  %s", m.cursor,
		view.ClockRange(st.SlotBeginTime(m.cursor), st.SlotBeginTime(m.cursor+1)),
		slotLabel(st.SlotAt(m.cursor)))
	if m.anchor != noSlot {
		from, to := m.selectionRange()
		pos += fmt.Sprintf("  [%d-%d]", from, to)
	}
	return m.styles.SubtitleStyle.Render(pos)
}

func slotLabel(slot strategy.Slot) string {
	if a, ok := slot.Activity(); ok {
		return a.Name
	}
	return "empty"
}

// visibleRows returns how many group rows fit between header and footer.
func (m Model) visibleRows() int {
	return max(m.height-headerLines-footerLines, 1)
}

// ensureCursorVisible scrolls so the cursor's group is on screen.
func (m *Model) ensureCursorVisible() {
	g, ok := m.session.strategy.GroupIndexForSlotIndex(m.cursor)
	if !ok {
		m.scroll = 0
		return
	}
	visible := m.visibleRows()
	if g < m.scroll {
		m.scroll = g
	}
	if g >= m.scroll+visible {
		m.scroll = g - visible + 1
	}
}
