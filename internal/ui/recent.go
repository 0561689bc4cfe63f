package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) recentCmd() *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently exported and imported documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if clearAll {
				if err := a.repo.ClearRecentFiles(ctx); err != nil {
					return fmt.Errorf("clearing recent files: %w", err)
				}
				fmt.Fprintln(out, "Recent files cleared")
				return nil
			}

			paths, err := a.repo.RecentFiles(ctx)
			if err != nil {
				return fmt.Errorf("listing recent files: %w", err)
			}
			if len(paths) == 0 {
				fmt.Fprintln(out, formatMuted("No recent files"))
				return nil
			}
			for i, path := range paths {
				fmt.Fprintf(out, "  %d  %s\n", i+1, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Forget all recent files")

	return cmd
}
