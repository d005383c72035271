// Package app provides the application context and dependency management
// for the stockroom CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// App represents the stockroom application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// inventory instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Inventory instance (lazy-initialized, singleton)
	mu  sync.RWMutex
	inv *inventory.Inventory
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Inventory returns the inventory instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Inventory() (*inventory.Inventory, error) {
	a.mu.RLock()
	if a.inv != nil {
		inv := a.inv
		a.mu.RUnlock()
		return inv, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.inv != nil {
		return a.inv, nil
	}

	inv, err := inventory.New(
		inventory.WithPath(a.config.DataPath),
		inventory.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.inv = inv
	return inv, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithInventory sets a custom inventory instance (useful for testing).
func WithInventory(inv *inventory.Inventory) Option {
	return func(a *App) error {
		a.inv = inv
		return nil
	}
}
