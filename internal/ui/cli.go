// Package ui implements the strategr command line.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/config"
	"github.com/javiermolinar/strategr/internal/db"
	"github.com/javiermolinar/strategr/internal/logging"
	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Store is the storage the CLI works against.
type Store interface {
	strategy.Repository
	TouchRecentFile(ctx context.Context, path string, limit int) error
	RecentFiles(ctx context.Context) ([]string, error)
	ClearRecentFiles(ctx context.Context) error
}

// App holds the CLI application state.
type App struct {
	repo       Store
	ownsRepo   bool // repo was opened by the app and is closed by Close
	config     *config.Config
	configPath string // where config changes are persisted, empty to never write
	root       *cobra.Command
	debug      bool // Enable debug logging
	logger     zerolog.Logger
	logCloser  io.Closer
}

// Option configures an App.
type Option func(*App)

// WithConfigPath sets the file config changes are written to.
func WithConfigPath(path string) Option {
	return func(a *App) {
		a.configPath = path
	}
}

// NewApp creates a new CLI application with the given store and config.
// A nil store is opened from the configured database path on first use.
func NewApp(repo Store, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "strategr [NAME]",
		Short: "Plan your day as a strategy of time slots",
		Long: `Strategr splits a day into equal time slots and lets you paint
them with activities.

Without arguments it opens the board on the default strategy, creating it
from the configured template if it does not exist yet.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd.ErrOrStderr())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := a.config.Strategy.Default
			if len(args) == 1 {
				name = args[0]
			}
			return a.runBoard(name)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to "+logging.DebugLogPath)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.newCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.assignCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.fillCmd())
	a.root.AddCommand(a.copyCmd())
	a.root.AddCommand(a.activityCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.recentCmd())
	a.root.AddCommand(a.deleteCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strategr %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// Close releases the database and log file opened by the app.
func (a *App) Close() error {
	var errs []error
	if a.ownsRepo && a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// setupLogging configures the process logger from flags and config.
func (a *App) setupLogging(stderr io.Writer) error {
	var err error
	switch {
	case a.debug:
		a.logger, a.logCloser, err = logging.OpenFile("debug", logging.DebugLogPath)
	case a.config.Log.File != "":
		a.logger, a.logCloser, err = logging.OpenFile(a.config.Log.Level, a.config.Log.File)
	default:
		a.logger, err = logging.Setup(a.config.Log.Level, stderr)
	}
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	return nil
}

// ensureRepo opens the configured database if no store was supplied.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.logger.Debug().Str("path", path).Msg("database opened")

	a.repo = repo
	a.ownsRepo = true
	return nil
}

// loadStrategy loads a stored strategy by name.
func (a *App) loadStrategy(ctx context.Context, name string) (*strategy.Strategy, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	st, err := a.repo.LoadStrategy(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading strategy: %w", err)
	}
	return st, nil
}

// saveStrategy stores st under name.
func (a *App) saveStrategy(ctx context.Context, name string, st *strategy.Strategy) error {
	if err := a.repo.SaveStrategy(ctx, name, st); err != nil {
		return fmt.Errorf("saving strategy: %w", err)
	}
	a.logger.Info().Str("strategy", name).Msg("strategy saved")
	return nil
}

// runBoard opens the board on name, creating it from the template if needed.
func (a *App) runBoard(name string) error {
	ctx := context.Background()
	if err := a.ensureRepo(); err != nil {
		return err
	}

	st, err := a.repo.LoadStrategy(ctx, name)
	if errors.Is(err, strategy.ErrStrategyNotFound) {
		a.logger.Info().Str("strategy", name).Msg("creating strategy from template")
		st, err = strategy.NewDefault(a.config.Template())
	}
	if err != nil {
		return fmt.Errorf("loading strategy: %w", err)
	}

	// The board owns the terminal, so it only logs when logging goes to a file.
	logger := zerolog.Nop()
	if a.logCloser != nil {
		logger = a.logger
	}
	return tui.Run(name, st, a.config, tui.WithStore(a.repo), tui.WithLogger(logger))
}

// persistConfig writes the config if the app has a config path.
func (a *App) persistConfig() error {
	if a.configPath == "" {
		return nil
	}
	if err := a.config.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
