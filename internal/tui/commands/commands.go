// Package commands provides board command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/strategr/internal/document"
	"github.com/javiermolinar/strategr/internal/strategy"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 3 * time.Second

// Store is the storage the board writes to.
type Store interface {
	SaveStrategy(ctx context.Context, name string, st *strategy.Strategy) error
	TouchRecentFile(ctx context.Context, path string, limit int) error
}

// SavedMsg is sent when a strategy has been stored.
type SavedMsg struct {
	Name  string
	Slots *strategy.TimeSlotsState // Slots as they were saved
}

// ExportedMsg is sent when a strategy has been written to a document.
type ExportedMsg struct {
	Path string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct {
	Seq int
}

// Save stores st under name. slots is echoed back in SavedMsg so the board
// knows which state reached the database.
func Save(store Store, name string, st *strategy.Strategy, slots *strategy.TimeSlotsState) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return ErrMsg{Err: fmt.Errorf("saving %q: no database configured", name)}
		}
		if err := store.SaveStrategy(context.Background(), name, st); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving %q: %w", name, err)}
		}
		return SavedMsg{Name: name, Slots: slots}
	}
}

// Export writes st to a document at path and records it as a recent file.
func Export(store Store, path, title string, st *strategy.Strategy, recentLimit int) tea.Cmd {
	return func() tea.Msg {
		if err := document.WriteFile(path, title, st); err != nil {
			return ErrMsg{Err: err}
		}
		if store != nil {
			if err := store.TouchRecentFile(context.Background(), path, recentLimit); err != nil {
				return ErrMsg{Err: fmt.Errorf("recording recent file: %w", err)}
			}
		}
		return ExportedMsg{Path: path}
	}
}

// ClearStatusAfter clears status message seq after d.
func ClearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
