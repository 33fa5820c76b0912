// Package application provides the application interface for tabfuse commands.
//
// The Application interface defines the contract between the application layer
// and command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "github.com/agentstation/tabfuse/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            tf, err := app.Tabfuse(tabfuse.WithInputs("visit1.csv"))
//	            if err != nil {
//	                return err
//	            }
//	            result, err := tf.Merge(cmd.Context())
//	            // ... render result
//	            return err
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	    QuietFunc:        func() bool { return true },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tabfuse"
)

// Application provides the application interface that commands need.
// The App struct from cmd/tabfuse/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with stub implementations.
type Application interface {
	// Tabfuse returns a reconciliation run configured with the given options
	// plus the application logger. Every call creates a fresh instance; runs
	// are one-shot and carry their own inputs.
	//
	// Example:
	//   tf, err := app.Tabfuse(tabfuse.WithDirectory("./exports"))
	Tabfuse(opts ...tabfuse.Option) (tabfuse.Tabfuse, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Verbose reports whether verbose output was requested.
	Verbose() bool

	// Quiet reports whether minimal output was requested.
	Quiet() bool

	// KeyColumn returns the default entity key column for merge and check.
	KeyColumn() string

	// PolicyName returns the default conflict policy name.
	PolicyName() string

	// SourceColumn returns the default provenance column name.
	SourceColumn() string

	// NATokens returns the configured missing-value markers.
	// An empty slice means the built-in defaults apply.
	NATokens() []string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
