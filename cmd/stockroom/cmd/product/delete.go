package product

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
	"github.com/quaycode/stockroom/internal/cmd/cmdutil"
)

// NewDeleteCommand creates the product delete subcommand.
func NewDeleteCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Remove a product from the catalog",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		Example: `  stockroom product delete 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID(args[0])
			if err != nil {
				return err
			}

			inv, err := app.Inventory()
			if err != nil {
				return err
			}

			if err := inv.Catalog().Delete(id); err != nil {
				return err
			}

			app.Logger().Info().Int64("id", id).Msg("Deleted product")
			cmd.Printf("Deleted product %d\n", id)
			return nil
		},
	}
}
