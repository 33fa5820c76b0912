package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tabfuse"
)

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := merge.NewCommand(mock)
//	// ... test command
type Mock struct {
	TabfuseFunc      func(opts ...tabfuse.Option) (tabfuse.Tabfuse, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VerboseFunc      func() bool
	QuietFunc        func() bool
	KeyColumnFunc    func() string
	PolicyNameFunc   func() string
	SourceColumnFunc func() string
	NATokensFunc     func() []string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Tabfuse builds an instance using the mock function or a real one from
// the given options, which lets command tests run against temp files.
func (m *Mock) Tabfuse(opts ...tabfuse.Option) (tabfuse.Tabfuse, error) {
	if m.TabfuseFunc != nil {
		return m.TabfuseFunc(opts...)
	}
	return tabfuse.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Verbose returns the verbose setting using the mock function or false.
func (m *Mock) Verbose() bool {
	if m.VerboseFunc != nil {
		return m.VerboseFunc()
	}
	return false
}

// Quiet returns the quiet setting using the mock function or true,
// keeping test output clean.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return true
}

// KeyColumn returns the key column using the mock function or "Patient".
func (m *Mock) KeyColumn() string {
	if m.KeyColumnFunc != nil {
		return m.KeyColumnFunc()
	}
	return "Patient"
}

// PolicyName returns the policy name using the mock function or "override".
func (m *Mock) PolicyName() string {
	if m.PolicyNameFunc != nil {
		return m.PolicyNameFunc()
	}
	return "override"
}

// SourceColumn returns the provenance column using the mock function or "TABLENAME".
func (m *Mock) SourceColumn() string {
	if m.SourceColumnFunc != nil {
		return m.SourceColumnFunc()
	}
	return "TABLENAME"
}

// NATokens returns missing-value markers using the mock function or nil.
func (m *Mock) NATokens() []string {
	if m.NATokensFunc != nil {
		return m.NATokensFunc()
	}
	return nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
