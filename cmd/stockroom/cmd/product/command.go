// Package product implements the catalog management commands.
package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
)

// NewCommand creates the product command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product [subcommand]",
		GroupID: "catalog",
		Short:   "Manage the product catalog",
		Long: `Product manages the shop's product catalog.

Available subcommands:
  list        - List products, optionally filtered by category
  get         - Show a single product
  add         - Add a new product
  update      - Update fields of an existing product
  delete      - Remove a product from the catalog
  copy        - Duplicate a product under a new ID
  search      - Full-text search across products
  categories  - List distinct product categories`,
		Example: `  stockroom product list                   # List all products
  stockroom product list --category Dairy  # List one category
  stockroom product add --name "Milk 1L" --price 129 --quantity 40
  stockroom product search milk            # Search by text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewGetCommand(app))
	cmd.AddCommand(NewAddCommand(app))
	cmd.AddCommand(NewUpdateCommand(app))
	cmd.AddCommand(NewDeleteCommand(app))
	cmd.AddCommand(NewCopyCommand(app))
	cmd.AddCommand(NewSearchCommand(app))
	cmd.AddCommand(NewCategoriesCommand(app))

	return cmd
}
