package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
	"github.com/quaycode/stockroom/internal/cmd/table"
)

// NewCategoriesCommand creates the product categories subcommand.
func NewCategoriesCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "List distinct product categories",
		Args:    cobra.NoArgs,
		Example: `  stockroom product categories`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			categories := inv.Catalog().Categories()

			return cmdutil.Render(cmd.OutOrStdout(), app.OutputFormat(), categories, func(_ bool) table.Data {
				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{c})
				}
				return table.Data{
					Headers: []string{"Category"},
					Rows:    rows,
				}
			})
		},
	}
}
