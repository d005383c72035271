package history

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
)

// NewListCommand creates the history list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List ledger records in chronological order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  stockroom history list
  stockroom history list --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			records := inv.Ledger().All()
			if limit > 0 && len(records) > limit {
				records = records[len(records)-limit:]
			}

			app.Logger().Debug().Int("count", len(records)).Msg("Listing ledger records")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), records, func(_ bool) table.Data {
				return table.SalesToData(records)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "show only the most recent N records")

	return cmd
}
