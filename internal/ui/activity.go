package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/strategy"
)

func (a *App) activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage the activity catalogue of a strategy",
	}

	cmd.AddCommand(a.activityListCmd())
	cmd.AddCommand(a.activityAddCmd())
	cmd.AddCommand(a.activityRemoveCmd())
	cmd.AddCommand(a.activityEditCmd())

	return cmd
}

func (a *App) activityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list NAME",
		Short: "List activities with their board keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.loadStrategy(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(st.Activities()) == 0 {
				fmt.Fprintln(out, formatMuted("No activities"))
				return nil
			}
			for i, activity := range st.Activities() {
				key := " "
				if i < 9 {
					key = fmt.Sprint(i + 1)
				}
				fmt.Fprintf(out, "  %s  %s %s %s\n", key, formatSwatch(activity, "  "),
					formatActivity(activity, activity.Name), formatMuted(activity.Color))
			}
			return nil
		},
	}
}

func (a *App) activityAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add NAME ACTIVITY",
		Short: "Add an activity to the catalogue",
		Long: `Add an activity to the catalogue of a strategy. Slots are not changed.

Example:
  strategr activity add weekday Reading --color "#cba6f7"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			activity, err := strategy.NewActivity(args[1], color)
			if err != nil {
				return err
			}
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				if _, ok := st.ActivityByName(activity.Name); ok {
					return fmt.Errorf("activity %q already exists", activity.Name)
				}
				st.AppendActivity(activity)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatActivity(activity, activity.Name))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Color as #RRGGBB")

	return cmd
}

func (a *App) activityRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME ACTIVITY",
		Aliases: []string{"rm"},
		Short:   "Remove an activity and clear its slots",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				activity, ok := st.ActivityByName(args[1])
				if !ok {
					return fmt.Errorf("no activity named %q in %s", args[1], args[0])
				}
				cleared := countSlots(st, activity)
				st.RemoveActivity(activity)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s, cleared %d slots\n", activity.Name, cleared)
				return nil
			})
		},
	}
}

func (a *App) activityEditCmd() *cobra.Command {
	var (
		rename string
		color  string
	)

	cmd := &cobra.Command{
		Use:   "edit NAME ACTIVITY",
		Short: "Rename or recolor an activity",
		Long: `Change the name or color of an activity. Every slot assigned to it
follows the change.

Example:
  strategr activity edit weekday "Work 1" --name Deep --color "#89dceb"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rename == "" && color == "" {
				return fmt.Errorf("nothing to change, pass --name or --color")
			}
			return a.editStrategy(args[0], func(st *strategy.Strategy) error {
				old, ok := st.ActivityByName(args[1])
				if !ok {
					return fmt.Errorf("no activity named %q in %s", args[1], args[0])
				}

				name, newColor := old.Name, old.Color
				if rename != "" {
					name = rename
				}
				if color != "" {
					newColor = color
				}
				updated, err := strategy.NewActivity(name, newColor)
				if err != nil {
					return err
				}
				if existing, ok := st.ActivityByName(updated.Name); ok && existing != old {
					return fmt.Errorf("activity %q already exists", updated.Name)
				}

				st.EditActivity(old, updated)
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatActivity(updated, updated.Name))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rename, "name", "", "New activity name")
	cmd.Flags().StringVarP(&color, "color", "c", "", "New color as #RRGGBB")

	return cmd
}

func countSlots(st *strategy.Strategy, activity strategy.Activity) int {
	n := 0
	for _, slot := range st.Slots() {
		if slot.Is(activity) {
			n++
		}
	}
	return n
}
