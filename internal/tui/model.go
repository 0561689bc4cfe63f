package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/strategr/internal/config"
	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/tui/commands"
	"github.com/javiermolinar/strategr/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeHelp
)

// noSlot marks an unset anchor or yank source.
const noSlot = -1

// Model is the board model.
type Model struct {
	// Dependencies
	store  commands.Store
	config *config.Config
	logger zerolog.Logger
	now    func() time.Time

	styles *Styles

	// Document
	name    string
	session *session

	// State
	mode        Mode
	cursor      int // Slot index
	anchor      int // Selection anchor slot, or noSlot
	yanked      int // Copy source slot, or noSlot
	scroll      int // First visible group
	confirmQuit bool

	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string
	statusErr bool
	statusSeq int
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithStore sets the store used by save and export.
func WithStore(store commands.Store) ModelOption {
	return func(m *Model) {
		m.store = store
	}
}

// WithLogger sets the logger for key and save events.
func WithLogger(logger zerolog.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithClock sets the clock used to jump to the current time.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a board editing st, stored under name.
func New(name string, st *strategy.Strategy, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "/save NAME"
	ti.CharLimit = 256
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.StatusStyle

	m := Model{
		config:  cfg,
		logger:  zerolog.Nop(),
		now:     time.Now,
		styles:  styles,
		name:    name,
		session: newSession(st),
		mode:    ModeNormal,
		anchor:  noSlot,
		yanked:  noSlot,
		prompt:  ti,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Strategy returns the strategy being edited.
func (m Model) Strategy() *strategy.Strategy {
	return m.session.strategy
}

// Name returns the name the strategy is saved under.
func (m Model) Name() string {
	return m.name
}

// Dirty reports whether there are unsaved slot changes.
func (m Model) Dirty() bool {
	return m.session.Dirty()
}

// Run starts the board.
func Run(name string, st *strategy.Strategy, cfg *config.Config, opts ...ModelOption) error {
	if cfg != nil && cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := New(name, st, cfg, opts...)
	model.logger.Debug().
		Str("strategy", name).
		Int("slots", st.NumberOfSlots()).
		Msg("board started")

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		m.logger.Debug().Bool("unsaved", m.Dirty()).Msg("board closed")
	}
	return err
}
