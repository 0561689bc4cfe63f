package ui

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/tui/view"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored strategies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			summaries, err := a.repo.ListStrategies(ctx)
			if err != nil {
				return fmt.Errorf("listing strategies: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, formatMuted("No strategies yet. Create one with: strategr new NAME"))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSLOTS\tSPAN\tUPDATED")
			for _, s := range summaries {
				end := s.BeginTime + s.NumberOfSlots*s.SlotDuration
				span := fmt.Sprintf("%s (%dm)", view.ClockRange(s.BeginTime, end), s.SlotDuration)
				marker := ""
				if s.Name == a.config.Strategy.Default {
					marker = " *"
				}
				fmt.Fprintf(tw, "%s%s\t%d\t%s\t%s\n", s.Name, marker, s.NumberOfSlots, span, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}
