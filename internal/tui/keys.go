package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/strategr/internal/document"
	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/tui/commands"
	"github.com/javiermolinar/strategr/internal/tui/input"
	"github.com/javiermolinar/strategr/internal/tui/view"
)

// keyHelp lists the normal mode bindings, shortest first for the help line.
var keyHelp = []view.KeyHelp{
	{Key: "j/k", Desc: "slot"},
	{Key: "J/K", Desc: "group"},
	{Key: "n", Desc: "now"},
	{Key: "1-9", Desc: "paint"},
	{Key: "x", Desc: "clear"},
	{Key: "v", Desc: "anchor"},
	{Key: "g", Desc: "select group"},
	{Key: "f", Desc: "fill"},
	{Key: "y/p", Desc: "copy"},
	{Key: "u", Desc: "undo"},
	{Key: "s", Desc: "save"},
	{Key: ":", Desc: "command"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()
	if key != "q" {
		m.confirmQuit = false
	}

	switch key {
	case "q":
		if m.session.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			cmd = m.setError("unsaved changes, press q again to quit")
			break
		}
		return m, tea.Quit

	// Navigation
	case "j", "down":
		m.moveCursor(m.cursor + 1)
	case "k", "up":
		m.moveCursor(m.cursor - 1)
	case "J", "shift+down":
		m.moveCursor(m.nextGroupStart())
	case "K", "shift+up":
		m.moveCursor(m.prevGroupStart())
	case "home":
		m.moveCursor(0)
	case "end":
		m.moveCursor(m.session.strategy.NumberOfSlots() - 1)
	case "n":
		cmd = m.jumpToNow()

	// Selection
	case "v":
		if m.anchor == noSlot {
			m.anchor = m.cursor
		} else {
			m.anchor = noSlot
		}
	case "g":
		m.selectGroup()
	case "esc":
		m.anchor = noSlot
		m.yanked = noSlot

	// Editing
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		cmd = m.paintActivity(int(key[0] - '1'))
	case "x", "delete":
		m.session.Paint(strategy.EmptySlot, m.selection())
		m.anchor = noSlot
	case "f":
		if m.anchor == noSlot {
			cmd = m.setError("set an anchor with v first")
			break
		}
		m.session.Fill(m.anchor, m.cursor)
		m.anchor = noSlot
	case "y":
		m.yanked = m.cursor
		cmd = m.setStatus(fmt.Sprintf("copied slot %d", m.cursor))
	case "p":
		if m.yanked == noSlot {
			cmd = m.setError("nothing copied, press y first")
			break
		}
		m.session.Copy(m.yanked, m.cursor)
	case "u":
		if !m.session.Undo() {
			cmd = m.setStatus("nothing to undo")
		}

	// Commands
	case "s":
		cmd = m.save()
	case ":":
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		cmd = m.prompt.Focus()
	case "?":
		m.mode = ModeHelp
	}

	return m, cmd
}

// handlePromptKeys handles keys while the command prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "tab":
		if value, ok := input.PromptAutocomplete(m.prompt.Value(), input.Commands); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil
	case "enter":
		line := m.prompt.Value()
		m.closePrompt()
		return m.runPrompt(line)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// runPrompt executes a command prompt line.
func (m Model) runPrompt(line string) (tea.Model, tea.Cmd) {
	cmd := m.execPrompt(line)
	return m, cmd
}

func (m *Model) execPrompt(line string) tea.Cmd {
	inv, err := input.Parse(line, input.Commands)
	if err != nil {
		return m.setError(err.Error())
	}

	switch inv.Command {
	case "/save":
		name := inv.Rest(0)
		if name == "" {
			return m.setError("usage: /save NAME")
		}
		m.name = name
		return m.save()

	case "/export":
		if inv.Arg(0) == "" {
			return m.setError("usage: /export PATH")
		}
		path := document.ResolvePath(inv.Rest(0), m.config.Files.LastDirectory)
		st, _ := m.session.Snapshot()
		return commands.Export(m.store, path, m.name, st, m.config.Files.RecentLimit)

	case "/activity":
		name, color := splitActivityArgs(inv)
		a, err := strategy.NewActivity(name, color)
		if err != nil {
			return m.setError(err.Error())
		}
		if !m.session.AddActivity(a) {
			return m.setError(fmt.Sprintf("activity %q already exists", a.Name))
		}
		n := len(m.session.strategy.Activities())
		return m.setStatus(fmt.Sprintf("added %s as %d", a.Name, n))

	case "/begin":
		minutes, err := strategy.ParseClock(inv.Arg(0))
		if err != nil {
			return m.setError(err.Error())
		}
		m.session.SetBeginTime(minutes)
	}

	return nil
}

// splitActivityArgs treats a trailing "#rrggbb" argument as the color.
func splitActivityArgs(inv input.Invocation) (name, color string) {
	last := inv.Arg(len(inv.Args) - 1)
	if strings.HasPrefix(last, "#") {
		return strings.Join(inv.Args[:len(inv.Args)-1], " "), last
	}
	return inv.Rest(0), ""
}

func (m Model) save() tea.Cmd {
	st, slots := m.session.Snapshot()
	return commands.Save(m.store, m.name, st, slots)
}

// paintActivity paints the selection with catalogue entry n.
func (m *Model) paintActivity(n int) tea.Cmd {
	activities := m.session.strategy.Activities()
	if n < 0 || n >= len(activities) {
		return m.setError(fmt.Sprintf("no activity %d", n+1))
	}
	m.session.Paint(strategy.SlotOf(activities[n]), m.selection())
	m.anchor = noSlot
	return nil
}

// selection returns the slots between anchor and cursor, or the cursor slot.
func (m Model) selection() []int {
	from, to := m.selectionRange()
	indices := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		indices = append(indices, i)
	}
	return indices
}

// selectionRange returns the inclusive selected slot range.
func (m Model) selectionRange() (int, int) {
	if m.anchor == noSlot {
		return m.cursor, m.cursor
	}
	return min(m.anchor, m.cursor), max(m.anchor, m.cursor)
}

// selectGroup selects the group under the cursor.
func (m *Model) selectGroup() {
	st := m.session.strategy
	g, ok := st.GroupIndexForSlotIndex(m.cursor)
	if !ok {
		return
	}
	start, end, _ := st.GroupRange(g)
	m.anchor = start
	m.moveCursor(end)
}

// nextGroupStart returns the first slot of the group after the cursor's.
func (m Model) nextGroupStart() int {
	st := m.session.strategy
	g, ok := st.GroupIndexForSlotIndex(m.cursor)
	if !ok {
		return m.cursor
	}
	if start, ok := st.StartSlotIndexForGroupIndex(g + 1); ok {
		return start
	}
	return m.cursor
}

// prevGroupStart returns the start of the cursor's group, or of the previous
// group when the cursor is already at a group start.
func (m Model) prevGroupStart() int {
	st := m.session.strategy
	g, ok := st.GroupIndexForSlotIndex(m.cursor)
	if !ok {
		return m.cursor
	}
	start, _ := st.StartSlotIndexForGroupIndex(g)
	if start < m.cursor {
		return start
	}
	if prev, ok := st.StartSlotIndexForGroupIndex(g - 1); ok {
		return prev
	}
	return m.cursor
}

// moveCursor clamps and sets the cursor, keeping its group on screen.
// jumpToNow moves the cursor to the slot covering the current wall-clock
// time. Strategies running past midnight are checked on the next day too.
func (m *Model) jumpToNow() tea.Cmd {
	now := m.now()
	minutes := now.Hour()*60 + now.Minute()
	idx, ok := m.session.slots.IndexAtTime(minutes)
	if !ok {
		idx, ok = m.session.slots.IndexAtTime(minutes + strategy.MinutesPerDay)
	}
	if !ok {
		return m.setError(fmt.Sprintf("%s is outside the strategy", strategy.MinutesToTime(minutes)))
	}
	m.moveCursor(idx)
	return nil
}

func (m *Model) moveCursor(slot int) {
	n := m.session.strategy.NumberOfSlots()
	m.cursor = min(max(slot, 0), n-1)
	m.ensureCursorVisible()
}
