// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/strategr/internal/strategy"
	"github.com/javiermolinar/strategr/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Strategy StrategyConfig `toml:"strategy"`
	Storage  StorageConfig  `toml:"storage"`
	Files    FilesConfig    `toml:"files"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// StrategyConfig holds the shape of newly created strategies.
type StrategyConfig struct {
	BeginTime     string `toml:"begin_time"`      // e.g., "06:00"
	SlotDuration  int    `toml:"slot_duration"`   // minutes
	NumberOfSlots int    `toml:"number_of_slots"` // e.g., 72
	Default       string `toml:"default"`         // strategy opened by the board
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// FilesConfig holds document file settings.
type FilesConfig struct {
	RecentLimit   int    `toml:"recent_limit"`
	LastDirectory string `toml:"last_directory"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Theme   string `toml:"theme"` // "mocha", "latte", ...
	NoColor bool   `toml:"no_color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	File  string `toml:"file"`  // empty logs to stderr
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Strategy: StrategyConfig{
			BeginTime:     strategy.MinutesToTime(strategy.DefaultBeginTime),
			SlotDuration:  strategy.DefaultSlotDuration,
			NumberOfSlots: strategy.DefaultNumberOfSlots,
			Default:       "default",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Files: FilesConfig{
			RecentLimit:   5,
			LastDirectory: "",
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "strategr.db"
	}
	return filepath.Join(home, ".local", "share", "strategr", "strategr.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "strategr", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Files.LastDirectory = expandPath(cfg.Files.LastDirectory)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("STRATEGR_BEGIN_TIME"); v != "" {
		cfg.Strategy.BeginTime = v
	}
	if v := os.Getenv("STRATEGR_SLOT_DURATION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STRATEGR_SLOT_DURATION: %w", err)
		}
		cfg.Strategy.SlotDuration = n
	}
	if v := os.Getenv("STRATEGR_NUMBER_OF_SLOTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STRATEGR_NUMBER_OF_SLOTS: %w", err)
		}
		cfg.Strategy.NumberOfSlots = n
	}
	if v := os.Getenv("STRATEGR_DEFAULT"); v != "" {
		cfg.Strategy.Default = v
	}

	if v := os.Getenv("STRATEGR_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("STRATEGR_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}

	if v := os.Getenv("STRATEGR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STRATEGR_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := strategy.ParseClock(c.Strategy.BeginTime); err != nil {
		return fmt.Errorf("begin_time must be in HH:MM format, got %q", c.Strategy.BeginTime)
	}
	if c.Strategy.SlotDuration <= 0 || c.Strategy.SlotDuration > strategy.MinutesPerDay {
		return fmt.Errorf("slot_duration must be between 1 and %d minutes", strategy.MinutesPerDay)
	}
	if c.Strategy.NumberOfSlots <= 0 {
		return errors.New("number_of_slots must be positive")
	}
	if c.Strategy.NumberOfSlots*c.Strategy.SlotDuration > strategy.MinutesPerDay {
		return errors.New("number_of_slots * slot_duration cannot exceed 24 hours")
	}
	if strings.TrimSpace(c.Strategy.Default) == "" {
		return errors.New("default strategy name must be set")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	if c.Files.RecentLimit < 0 {
		return errors.New("recent_limit cannot be negative")
	}

	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q, available: %s", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	return nil
}

// Template returns the shape of new strategies.
// Call Validate first; an invalid begin time yields midnight.
func (c *Config) Template() strategy.Template {
	return strategy.Template{
		NumberOfSlots: c.Strategy.NumberOfSlots,
		BeginTime:     strategy.TimeToMinutes(c.Strategy.BeginTime),
		SlotDuration:  c.Strategy.SlotDuration,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
