package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewGetCommand creates the product get subcommand.
func NewGetCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a single product",
		Args:    cobra.ExactArgs(1),
		Example: `  stockroom product get 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			product, err := inv.Catalog().Get(id)
			if err != nil {
				return err
			}

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), product, func(_ bool) table.Data {
				return table.ProductsToData([]inventory.Product{product}, true)
			})
		},
	}
}
