package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// NewCopyCommand creates the product copy subcommand.
func NewCopyCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "copy <id>",
		Short:   "Duplicate a product under a new ID",
		Args:    cobra.ExactArgs(1),
		Example: `  stockroom product copy 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			product, err := inv.Catalog().Copy(id)
			if err != nil {
				return err
			}

			app.Logger().Info().
				Int64("source", id).
				Int64("id", product.ID).
				Msg("Copied product")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), product, func(_ bool) table.Data {
				return table.ProductsToData([]inventory.Product{product}, true)
			})
		},
	}
}
