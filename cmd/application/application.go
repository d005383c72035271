// Package application provides the application interface for stockroom commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	import (
//	    "github.com/quaycode/stockroom/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            inv, err := app.Inventory()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use inventory
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/quaycode/stockroom/pkg/inventory"
)

// Application provides the application interface that commands need.
// The App struct from cmd/stockroom/app automatically implements this
// interface, providing dependency injection for commands while keeping
// them testable with mock implementations.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Inventory returns the shared inventory instance.
	// It is lazy-initialized on first access and cached afterwards.
	Inventory() (*inventory.Inventory, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
