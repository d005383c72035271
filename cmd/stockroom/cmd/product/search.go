package product

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
)

// NewSearchCommand creates the product search subcommand.
func NewSearchCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "search [text]",
		Short: "Full-text search across products",
		Long: `Search matches the given text against product names, categories,
and descriptions, ignoring case. Without arguments it lists the
whole catalog.`,
		Example: `  stockroom product search milk
  stockroom product search "aged cheese"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			needle := strings.Join(args, " ")
			products := inv.Catalog().Search(needle)

			app.Logger().Debug().
				Str("query", needle).
				Int("count", len(products)).
				Msg("Searched products")

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), products, func(wide bool) table.Data {
				return table.ProductsToData(products, wide)
			})
		},
	}
}
