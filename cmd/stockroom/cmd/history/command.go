// Package history implements the sales ledger inspection commands.
package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/application"
)

// NewCommand creates the history command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history [subcommand]",
		GroupID: "sales",
		Short:   "Inspect the sales ledger",
		Long: `History shows the append-only sales ledger.

Available subcommands:
  list     - List ledger records in chronological order
  summary  - Aggregate totals across the ledger`,
		Example: `  stockroom history list            # Full ledger
  stockroom history list --limit 10 # Ten most recent records
  stockroom history summary         # Totals`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewSummaryCommand(app))

	return cmd
}
