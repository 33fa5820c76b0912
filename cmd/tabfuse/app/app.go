// Package app provides the application context and dependency management
// for the tabfuse CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tabfuse"
	"github.com/agentstation/tabfuse/cmd/application"
	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/tabio"
	"github.com/agentstation/tabfuse/pkg/tables"
)

// Ensure App implements the command-facing interface at compile time.
var _ application.Application = (*App)(nil)

// App represents the tabfuse application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// reconciliation runs, following the dependency injection pattern.
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
		return nil, errors.WrapConfig("app", err)
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

// Verbose reports whether verbose output was requested.
func (a *App) Verbose() bool {
	return a.config.Verbose
}

// Quiet reports whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// KeyColumn returns the default entity key column.
func (a *App) KeyColumn() string {
	return a.config.KeyColumn
}

// PolicyName returns the default conflict policy name.
func (a *App) PolicyName() string {
	return a.config.Policy
}

// SourceColumn returns the default provenance column name.
func (a *App) SourceColumn() string {
	return a.config.SourceColumn
}

// NATokens returns the configured missing-value markers.
func (a *App) NATokens() []string {
	return a.config.NATokens
}

// Tabfuse creates a reconciliation run from the given options.
// Runs are one-shot and carry their own inputs, so every call builds a
// fresh instance. Configuration-derived options come first so explicit
// options win.
func (a *App) Tabfuse(opts ...tabfuse.Option) (tabfuse.Tabfuse, error) {
	merged := append(a.buildTabfuseOptions(), opts...)
	tf, err := tabfuse.New(merged...)
	if err != nil {
		return nil, err
	}
	return tf, nil
}

// buildTabfuseOptions constructs tabfuse options from the app configuration.
func (a *App) buildTabfuseOptions() []tabfuse.Option {
	opts := []tabfuse.Option{
		tabfuse.WithLogger(a.logger),
	}

	// Custom missing-value markers if configured
	if len(a.config.NATokens) > 0 {
		tokens := tables.NewNATokens(a.config.NATokens...)
		opts = append(opts, tabfuse.WithLoadOptions(tabio.WithNATokens(tokens)))
	}

	return opts
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
