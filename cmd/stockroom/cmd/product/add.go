package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewAddCommand creates the product add subcommand.
func NewAddCommand(app application.Application) *cobra.Command {
	var draft inventory.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product to the catalog",
		Args:  cobra.NoArgs,
		Example: `  stockroom product add --name "Milk 1L" --price 129 --quantity 40
  stockroom product add --name "Brie" --category Cheese --price 450`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			product, err := inv.Catalog().Add(draft)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Int64("id", product.ID).
				Str("name", product.Name).
				Msg("Added product")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), product, func(_ bool) table.Data {
				return table.ProductsToData([]inventory.Product{product}, true)
			})
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&draft.Category, "category", "", "product category")
	cmd.Flags().IntVar(&draft.Quantity, "quantity", 0, "initial stock quantity")
	cmd.Flags().Int64Var(&draft.Price, "price", 0, "unit price in minor currency units (cents)")
	cmd.Flags().StringVar(&draft.Description, "description", "", "free-form description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
