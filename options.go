package tabfuse

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/tabfuse/pkg/constants"
	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
	"github.com/agentstation/tabfuse/pkg/reconcile"
	"github.com/agentstation/tabfuse/pkg/tabio"
)

// options configures a Tabfuse instance.
type options struct {
	inputs       []string
	directory    string
	output       string
	key          string
	policy       reconcile.Policy
	verify       bool
	sourceColumn string
	logger       *zerolog.Logger
	load         []tabio.Option
}

// defaultOptions returns options with default values: the default key
// column, fail-fast conflict resolution, and verification off.
func defaultOptions() *options {
	return &options{
		key:    constants.DefaultKeyColumn,
		policy: reconcile.FailFast(),
	}
}

// Option is a function that configures a Tabfuse instance.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns tabfuse options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// keys returns the key tuple used for pairwise detection.
func (o *options) keys() []string {
	return []string{o.key}
}

// loggerContext attaches the configured logger to the context so every
// stage of the run logs through it.
func (o *options) loggerContext(ctx context.Context) context.Context {
	if o.logger == nil {
		return ctx
	}
	return logging.WithLogger(ctx, o.logger)
}

// WithInputs adds input file paths to load. Paths load in the order given.
func WithInputs(paths ...string) Option {
	return func(o *options) error {
		for _, path := range paths {
			if path == "" {
				return &errors.ValidationError{
					Field:   "inputs",
					Message: "input path cannot be empty",
				}
			}
		}
		o.inputs = append(o.inputs, paths...)
		return nil
	}
}

// WithDirectory sets a directory to discover input files in. Discovered
// files load after any explicit inputs.
func WithDirectory(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "directory",
				Message: "cannot be empty",
			}
		}
		o.directory = dir
		return nil
	}
}

// WithOutput sets the path the consolidated table is written to. Without
// an output, Merge builds the table in memory only.
func WithOutput(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "output",
				Message: "cannot be empty",
			}
		}
		o.output = path
		return nil
	}
}

// WithKeyColumn sets the entity key column used for joining and grouping.
func WithKeyColumn(name string) Option {
	return func(o *options) error {
		if name == "" {
			return &errors.ValidationError{
				Field:   "key",
				Message: "cannot be empty",
			}
		}
		o.key = name
		return nil
	}
}

// WithPolicy sets the conflict resolution policy applied during
// verification. The default is fail-fast.
func WithPolicy(policy reconcile.Policy) Option {
	return func(o *options) error {
		if policy == nil {
			return &errors.ValidationError{
				Field:   "policy",
				Message: "cannot be nil",
			}
		}
		o.policy = policy
		return nil
	}
}

// WithVerify enables pairwise conflict verification before merging.
func WithVerify(enabled bool) Option {
	return func(o *options) error {
		o.verify = enabled
		return nil
	}
}

// WithSourceColumn adds a provenance column with the given name to the
// merged table, recording which input each entity's first record came from.
func WithSourceColumn(name string) Option {
	return func(o *options) error {
		if name == "" {
			return &errors.ValidationError{
				Field:   "source column",
				Message: "cannot be empty",
			}
		}
		o.sourceColumn = name
		return nil
	}
}

// WithLogger sets the logger used for the run.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}

// WithLoadOptions adds tabio options applied when loading every input,
// such as tabio.WithNATokens or tabio.WithDelimiter.
func WithLoadOptions(opts ...tabio.Option) Option {
	return func(o *options) error {
		o.load = append(o.load, opts...)
		return nil
	}
}
