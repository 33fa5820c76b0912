package merge

import (
	"github.com/agentstation/tabfuse"
	"github.com/agentstation/tabfuse/pkg/reconcile"
)

// BuildMergeOptions creates a slice of tabfuse options based on the provided flags.
func BuildMergeOptions(flags *Flags) ([]tabfuse.Option, error) {
	policy, err := reconcile.PolicyFromName(flags.Policy)
	if err != nil {
		return nil, err
	}

	opts := []tabfuse.Option{
		tabfuse.WithKeyColumn(flags.Key),
		tabfuse.WithOutput(flags.Output),
		tabfuse.WithPolicy(policy),
		tabfuse.WithVerify(flags.Check),
	}

	if len(flags.Inputs) > 0 {
		opts = append(opts, tabfuse.WithInputs(flags.Inputs...))
	}
	if flags.Dir != "" {
		opts = append(opts, tabfuse.WithDirectory(flags.Dir))
	}
	if !flags.NoSourceColumn {
		opts = append(opts, tabfuse.WithSourceColumn(flags.SourceColumn))
	}

	return opts, nil
}
