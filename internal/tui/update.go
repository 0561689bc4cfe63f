package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/strategr/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		revision := m.session.revision
		updated, cmd := m.handleKeyMsg(msg)
		if model, ok := updated.(Model); ok {
			// Edits can merge or split groups under the cursor.
			model.ensureCursorVisible()
			if model.session.revision != revision {
				model.logGroups()
			}
			return model, cmd
		}
		return updated, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(msg.Width-4, 10)
		m.ensureCursorVisible()
		return m, nil

	case commands.SavedMsg:
		if msg.Slots != nil {
			m.session.MarkSaved(msg.Slots)
		}
		m.confirmQuit = false
		m.logger.Info().Str("strategy", msg.Name).Msg("strategy saved")
		cmd := m.setStatus(fmt.Sprintf("saved %s", msg.Name))
		return m, cmd

	case commands.ExportedMsg:
		m.logger.Info().Str("path", msg.Path).Msg("strategy exported")
		cmd := m.setStatus(fmt.Sprintf("exported to %s", msg.Path))
		return m, cmd

	case commands.ErrMsg:
		m.logger.Error().Err(msg.Err).Msg("board command failed")
		cmd := m.setError(msg.Err.Error())
		return m, cmd

	case commands.ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setStatus shows msg and schedules it to be cleared.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusSeq++
	m.statusMsg = msg
	m.statusErr = false
	return commands.ClearStatusAfter(commands.StatusTimeout, m.statusSeq)
}

// setError shows msg as an error and schedules it to be cleared.
func (m *Model) setError(msg string) tea.Cmd {
	cmd := m.setStatus(msg)
	m.statusErr = true
	return cmd
}

// logKeyPress logs a key press at debug level.
func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug().
		Str("key", msg.String()).
		Int("cursor", m.cursor).
		Int("anchor", m.anchor).
		Str("mode", m.mode.String()).
		Msg("key press")
}

// logGroups dumps the strategy groups at debug level after an edit.
func (m Model) logGroups() {
	if e := m.logger.Debug(); e.Enabled() {
		e.Str("strategy", m.name).Msg(m.session.strategy.DebugGroups())
	}
}

// String returns a string representation of a Mode.
func (mode Mode) String() string {
	switch mode {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	case ModeHelp:
		return "help"
	default:
		return fmt.Sprintf("unknown(%d)", int(mode))
	}
}
