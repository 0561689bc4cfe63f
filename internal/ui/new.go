package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/strategy"
)

func (a *App) newCmd() *cobra.Command {
	var (
		slots    int
		begin    string
		duration int
		empty    bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a strategy",
		Long: `Create a strategy with the default activities.

The shape comes from the [strategy] section of the config unless
overridden by flags. With --empty the slots start unassigned.

Examples:
  strategr new weekday
  strategr new saturday --begin 08:00 --slots 48 --duration 20
  strategr new blank --empty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			template := a.config.Template()
			if cmd.Flags().Changed("slots") {
				template.NumberOfSlots = slots
			}
			if cmd.Flags().Changed("duration") {
				template.SlotDuration = duration
			}
			if cmd.Flags().Changed("begin") {
				minutes, err := strategy.ParseClock(begin)
				if err != nil {
					return err
				}
				template.BeginTime = minutes
			}

			if template.SlotDuration <= 0 {
				return fmt.Errorf("slot duration must be positive")
			}
			if template.NumberOfSlots*template.SlotDuration > strategy.MinutesPerDay {
				return fmt.Errorf("%d slots of %d minutes exceed 24 hours", template.NumberOfSlots, template.SlotDuration)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if !force {
				_, err := a.repo.LoadStrategy(ctx, name)
				if err == nil {
					return fmt.Errorf("strategy %q already exists, use --force to replace it", name)
				}
				if !errors.Is(err, strategy.ErrStrategyNotFound) {
					return fmt.Errorf("loading strategy: %w", err)
				}
			}

			st, err := newFromTemplate(template, empty)
			if err != nil {
				return err
			}
			if err := a.saveStrategy(ctx, name, st); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %d slots of %dm from %s\n",
				formatHeader(name), st.NumberOfSlots(), st.SlotDuration(), strategy.MinutesToTime(st.BeginTime()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&slots, "slots", "n", 0, "Number of slots")
	cmd.Flags().StringVarP(&begin, "begin", "b", "", "Begin time (HH:MM)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "Slot duration in minutes")
	cmd.Flags().BoolVar(&empty, "empty", false, "Leave every slot unassigned")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing strategy")

	return cmd
}

// newFromTemplate creates a default strategy, or an unassigned one.
func newFromTemplate(t strategy.Template, empty bool) (*strategy.Strategy, error) {
	if !empty {
		return strategy.NewDefault(t)
	}
	return strategy.New(t.NumberOfSlots,
		strategy.WithBeginTime(t.BeginTime),
		strategy.WithSlotDuration(t.SlotDuration),
		strategy.WithActivities(strategy.DefaultActivities()...),
	)
}
