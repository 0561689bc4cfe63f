package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/document"
)

func (a *App) exportCmd() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export NAME [PATH]",
		Short: "Export a strategy as a document",
		Long: `Write a stored strategy as a JSON document.

PATH gets the .stg extension when it has none. Relative paths are taken
from the directory of the last export or import. Without PATH the
document is printed, or copied with --clipboard.

Examples:
  strategr export weekday ~/plans/weekday
  strategr export weekday --clipboard`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			st, err := a.loadStrategy(ctx, name)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				data, err := document.Marshal(name, st)
				if err != nil {
					return err
				}
				if toClipboard {
					if err := clipboard.WriteAll(string(data)); err != nil {
						return fmt.Errorf("copying to clipboard: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", name)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			path := document.ResolvePath(args[1], a.config.Files.LastDirectory)
			if err := document.WriteFile(path, name, st); err != nil {
				return err
			}
			a.logger.Info().Str("strategy", name).Str("path", path).Msg("strategy exported")

			if err := a.rememberFile(ctx, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", formatHeader(name), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the document to the clipboard instead of printing it")

	return cmd
}

// rememberFile records path as recent and its directory as the last used.
func (a *App) rememberFile(ctx context.Context, path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := a.repo.TouchRecentFile(ctx, path, a.config.Files.RecentLimit); err != nil {
		return fmt.Errorf("recording recent file: %w", err)
	}
	a.config.Files.LastDirectory = filepath.Dir(path)
	return a.persistConfig()
}
