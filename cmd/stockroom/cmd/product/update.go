package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewUpdateCommand creates the product update subcommand.
// Only flags explicitly set on the command line are applied, so an
// empty --category clears the category while an omitted flag leaves
// the stored value untouched.
func NewUpdateCommand(app application.Application) *cobra.Command {
	var (
		name        string
		category    string
		quantity    int
		price       int64
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing product",
		Args:  cobra.ExactArgs(1),
		Example: `  stockroom product update 7 --price 139
  stockroom product update 7 --name "Milk 1L (organic)" --quantity 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			var patch inventory.Patch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("quantity") {
				patch.Quantity = &quantity
			}
			if cmd.Flags().Changed("price") {
				patch.Price = &price
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			product, err := inv.Catalog().Update(id, patch)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Int64("id", product.ID).
				Str("name", product.Name).
				Msg("Updated product")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), product, func(_ bool) table.Data {
				return table.ProductsToData([]inventory.Product{product}, true)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&category, "category", "", "product category")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "stock quantity")
	cmd.Flags().Int64Var(&price, "price", 0, "unit price in minor currency units (cents)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")

	return cmd
}
