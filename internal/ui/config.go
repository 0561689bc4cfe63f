package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/config"
	"github.com/javiermolinar/strategr/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the current configuration.

With --edit, asks for each value in turn. An empty answer keeps the
current value. The result is validated before it is written.

Example:
  strategr config --edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if a.configPath != "" {
				fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
			}
			printConfig(out, a.config)

			if !edit {
				return nil
			}
			return a.editConfig(bufio.NewReader(cmd.InOrStdin()), out)
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the configuration interactively")

	return cmd
}

// editConfig prompts for every editable value and saves the result.
func (a *App) editConfig(reader *bufio.Reader, out io.Writer) error {
	updated := *a.config

	fmt.Fprintln(out)
	updated.Strategy.BeginTime = promptValue(reader, out, "Begin time (HH:MM)", updated.Strategy.BeginTime)
	updated.Strategy.SlotDuration = promptInt(reader, out, "Slot duration (minutes)", updated.Strategy.SlotDuration)
	updated.Strategy.NumberOfSlots = promptInt(reader, out, "Number of slots", updated.Strategy.NumberOfSlots)
	updated.Strategy.Default = promptValue(reader, out, "Default strategy", updated.Strategy.Default)
	updated.Storage.DBPath = promptValue(reader, out, "Database path", updated.Storage.DBPath)
	updated.Files.RecentLimit = promptInt(reader, out, "Recent files to keep", updated.Files.RecentLimit)
	updated.UI.Theme = promptTheme(reader, out, updated.UI.Theme)

	if err := updated.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	*a.config = updated
	if err := a.persistConfig(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[strategy]")
	fmt.Fprintf(w, "  begin_time      = %s\n", cfg.Strategy.BeginTime)
	fmt.Fprintf(w, "  slot_duration   = %d\n", cfg.Strategy.SlotDuration)
	fmt.Fprintf(w, "  number_of_slots = %d\n", cfg.Strategy.NumberOfSlots)
	fmt.Fprintf(w, "  default         = %s\n", cfg.Strategy.Default)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path         = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[files]")
	fmt.Fprintf(w, "  recent_limit    = %d\n", cfg.Files.RecentLimit)
	if cfg.Files.LastDirectory != "" {
		fmt.Fprintf(w, "  last_directory  = %s\n", cfg.Files.LastDirectory)
	}
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme           = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  no_color        = %t\n", cfg.UI.NoColor)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level           = %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Fprintf(w, "  file            = %s\n", cfg.Log.File)
	}
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, w io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, w, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(w, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
