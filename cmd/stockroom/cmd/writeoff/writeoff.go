// Package writeoff implements the stock write-off command.
package writeoff

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewCommand creates the writeoff command with app dependencies.
// A write-off removes the product's entire remaining stock and records
// the loss in the sales ledger with the given reason.
func NewCommand(app application.Application) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:     "writeoff <id>",
		GroupID: "sales",
		Short:   "Write off a product's remaining stock",
		Args:    cobra.ExactArgs(1),
		Example: `  stockroom writeoff 7 --reason "expired"
  stockroom writeoff 12 --reason "water damage"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			record, err := inv.WriteOff(id, reason)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Int64("product", record.ProductID).
				Int("quantity", record.Quantity).
				Str("reason", record.Reason).
				Msg("Wrote off stock")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), record, func(_ bool) table.Data {
				return table.SalesToData([]inventory.SaleRecord{record})
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason for the write-off (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
