package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/strategy"
)

// editStrategy loads name, applies fn and saves the result.
func (a *App) editStrategy(name string, fn func(st *strategy.Strategy) error) error {
	ctx := context.Background()
	st, err := a.loadStrategy(ctx, name)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	if e := a.logger.Debug(); e.Enabled() {
		e.Str("strategy", name).Msg(st.DebugSlots())
	}
	return a.saveStrategy(ctx, name, st)
}

func (a *App) assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign NAME ACTIVITY INDEX...",
		Short: "Assign an activity to slots",
		Long: `Assign a catalogue activity to one or more slots.

Indices are zero based and may be inclusive ranges.

Example:
  strategr assign weekday "Work 1" 8 9 12-15`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, activityName := args[0], args[1]
			return a.editStrategy(name, func(st *strategy.Strategy) error {
				activity, ok := st.ActivityByName(activityName)
				if !ok {
					return fmt.Errorf("no activity named %q in %s", activityName, name)
				}
				indices, err := parseIndices(args[2:], st.NumberOfSlots())
				if err != nil {
					return err
				}
				st.SetSlotsAt(indices, strategy.SlotOf(activity))
				fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %d slots\n", formatActivity(activity, activity.Name), len(indices))
				return nil
			})
		},
	}
}

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear NAME INDEX...",
		Short: "Clear slots",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				indices, err := parseIndices(args[1:], st.NumberOfSlots())
				if err != nil {
					return err
				}
				st.SetSlotsAt(indices, strategy.EmptySlot)
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d slots\n", len(indices))
				return nil
			})
		},
	}
}

func (a *App) fillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill NAME FROM TO",
		Short: "Fill a range with the slot at FROM",
		Long: `Copy the slot at FROM into every slot from FROM to TO inclusive.
TO may be before FROM.

Example:
  strategr fill weekday 12 20`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				from, err := parseIndex(args[1], st.NumberOfSlots())
				if err != nil {
					return err
				}
				to, err := parseIndex(args[2], st.NumberOfSlots())
				if err != nil {
					return err
				}
				st.FillSlots(from, to)
				fmt.Fprintf(cmd.OutOrStdout(), "Filled %d-%d with %s\n", min(from, to), max(from, to), describeSlot(st.SlotAt(from)))
				return nil
			})
		},
	}
}

func (a *App) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy NAME FROM TO",
		Short: "Copy one slot onto another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				from, err := parseIndex(args[1], st.NumberOfSlots())
				if err != nil {
					return err
				}
				to, err := parseIndex(args[2], st.NumberOfSlots())
				if err != nil {
					return err
				}
				st.CopySlot(from, to)
				fmt.Fprintf(cmd.OutOrStdout(), "Copied slot %d to %d (%s)\n", from, to, describeSlot(st.SlotAt(to)))
				return nil
			})
		},
	}
}

func describeSlot(slot strategy.Slot) string {
	if a, ok := slot.Activity(); ok {
		return formatActivity(a, a.Name)
	}
	return formatMuted("empty")
}
