package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/strategr/internal/document"
	"github.com/javiermolinar/strategr/internal/strategy"
)

func (a *App) importCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Import a strategy document",
		Long: `Read a strategy document and store it.

The strategy is stored under the document title, or the file name when
the document has none. Use --name to pick another name.

Example:
  strategr import ~/plans/weekday.stg --name weekday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := a.ensureRepo(); err != nil {
				return err
			}

			path := document.ResolvePath(args[0], a.config.Files.LastDirectory)
			title, st, err := document.ReadFile(path)
			if err != nil {
				return err
			}
			if name == "" {
				name = title
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

			if err := a.saveStrategy(ctx, name, st); err != nil {
				return err
			}
			if err := a.rememberFile(ctx, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d slots, %d activities\n",
				formatHeader(name), st.NumberOfSlots(), len(st.Activities()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Store under this name")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing strategy")

	return cmd
}
