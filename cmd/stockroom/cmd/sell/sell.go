// Package sell implements the cart-based sale command.
package sell

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewCommand creates the sell command with app dependencies.
// Each argument names a product and quantity as id:qty; a bare id
// sells a single unit. All lines are staged in a cart, validated
// against current stock, and committed as one receipt.
func NewCommand(app application.Application) *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:     "sell <id[:qty]> [id[:qty]...]",
		GroupID: "sales",
		Short:   "Sell products and record the sale",
		Args:    cobra.MinimumNArgs(1),
		Example: `  stockroom sell 7           # Sell one unit of product 7
  stockroom sell 7:3 12:1    # Sell three of 7 and one of 12
  stockroom sell 7:2 --customer "Ada"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			cart := inv.NewCart()
			for _, arg := range args {
				idPart, qtyPart, hasQty := strings.Cut(arg, ":")

				id, err := cmdutil.ParseID(idPart)
				if err != nil {
					return err
				}

				qty := 1
				if hasQty {
					qty, err = cmdutil.ParseQuantity(qtyPart)
					if err != nil {
						return err
					}
				}

				if err := cart.AddItem(id, qty); err != nil {
					return err
				}
			}

			lines := cart.Lines()
			total := cart.Total()

			var opts []inventory.CommitOption
			if customer != "" {
				opts = append(opts, inventory.WithCustomer(customer))
			}

			records, err := cart.Commit(opts...)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Str("receipt", records[0].ReceiptID).
				Int("lines", len(records)).
				Int64("total", total).
				Msg("Sale committed")

			if err := cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), records, func(_ bool) table.Data {
				return table.LinesToData(lines)
			}); err != nil {
				return err
			}

			cmd.Printf("Receipt %s, total %d\n", records[0].ReceiptID, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name to record on the receipt")

	return cmd
}
