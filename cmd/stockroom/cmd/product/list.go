package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewListCommand creates the product list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List products from the catalog",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  stockroom product list                   # List all products
  stockroom product list --category Dairy  # List one category
  stockroom product list -o json           # Machine-readable output`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}
			catalog := inv.Catalog()

			var products []inventory.Product
			if category != "" {
				products = catalog.FilterByCategory(category)
			} else {
				products = catalog.List()
			}

			app.Logger().Debug().Int("count", len(products)).Msg("Listing products")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), products, func(wide bool) table.Data {
				return table.ProductsToData(products, wide)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by exact category")

	return cmd
}
