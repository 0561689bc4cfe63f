package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/strategy"
)

func (a *App) showCmd() *cobra.Command {
	var (
		slots   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Print a strategy",
		Long: `Print the activity groups of a strategy with their times and durations.

Without NAME the default strategy is shown. With --slots every slot is
printed with its index, which is what assign, clear, fill and copy take.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.config.Strategy.Default
			if len(args) == 1 {
				name = args[0]
			}
			if noColor || a.config.UI.NoColor {
				defer disableColor()()
			}

			st, err := a.loadStrategy(context.Background(), name)
			if err != nil {
				return err
			}

			printStrategy(cmd, name, st, slots)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&slots, "slots", "s", false, "Print every slot with its index")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// printStrategy prints the header, the groups or slots and the totals.
func printStrategy(cmd *cobra.Command, name string, st *strategy.Strategy, slots bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", formatHeader(name),
		formatMuted(fmt.Sprintf("%s  %d × %dm", clockRange(st, 0, st.NumberOfSlots()-1), st.NumberOfSlots(), st.SlotDuration())))
	if slots {
		printSlots(out, st)
	} else {
		printGroups(out, st, termWidth())
	}
	printTotals(out, st)
}
