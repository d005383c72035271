package app

import (
	"github.com/spf13/cobra"

	"github.com/quaycode/stockroom/cmd/stockroom/cmd/history"
	"github.com/quaycode/stockroom/cmd/stockroom/cmd/product"
	"github.com/quaycode/stockroom/cmd/stockroom/cmd/sell"
	"github.com/quaycode/stockroom/cmd/stockroom/cmd/writeoff"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(product.NewCommand(a))

	// Sales commands
	rootCmd.AddCommand(sell.NewCommand(a))
	rootCmd.AddCommand(writeoff.NewCommand(a))
	rootCmd.AddCommand(history.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("stockroom %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
