package reconcile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentstation/tabfuse/pkg/errors"
	"github.com/agentstation/tabfuse/pkg/logging"
)

// Decision is a policy's verdict on a conflicted run.
type Decision int

const (
	// Proceed lets the run continue despite any conflicts.
	Proceed Decision = iota
	// Abort stops the run.
	Abort
)

// String returns the string representation of a decision.
func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Policy decides whether a run may continue once a conflict report is
// in hand. A single policy instance serves every report of a run, so a
// policy may carry state across calls.
type Policy interface {
	// Name identifies the policy in flags and config files.
	Name() string

	// Description explains what the policy does with conflicts.
	Description() string

	// Resolve inspects the report and returns the verdict.
	Resolve(ctx context.Context, r *Report) (Decision, error)
}

// ConflictError is returned when a policy aborts a conflicted run. It
// carries the report so callers can render the disagreements.
type ConflictError struct {
	Report *Report
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Report == nil {
		return "conflicting values"
	}
	return fmt.Sprintf("%d conflicting values between %s and %s",
		len(e.Report.Conflicts), e.Report.LeftSource, e.Report.RightSource)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == errors.ErrConflicts
}

// PolicyFromName resolves a policy by its configuration name: "fail",
// "prompt", or "override". The prompt policy reads from standard input.
func PolicyFromName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fail":
		return FailFast(), nil
	case "prompt":
		return Interactive(nil), nil
	case "override":
		return Override(), nil
	default:
		return nil, errors.NewValidationError("policy", name, `must be "fail", "prompt", or "override"`)
	}
}

// FailFast returns the policy that aborts on the first conflicted
// report.
func FailFast() Policy {
	return failFastPolicy{}
}

type failFastPolicy struct{}

func (failFastPolicy) Name() string        { return "fail" }
func (failFastPolicy) Description() string { return "Abort the run when any conflict is found" }

func (failFastPolicy) Resolve(_ context.Context, r *Report) (Decision, error) {
	if r.HasConflicts() {
		return Abort, &ConflictError{Report: r}
	}
	return Proceed, nil
}

// Override returns the policy that logs every conflict at warn level
// and always proceeds.
func Override() Policy {
	return overridePolicy{}
}

type overridePolicy struct{}

func (overridePolicy) Name() string        { return "override" }
func (overridePolicy) Description() string { return "Log conflicts and continue" }

func (overridePolicy) Resolve(ctx context.Context, r *Report) (Decision, error) {
	logger := logging.FromContext(ctx).With().
		Str("left", r.LeftSource).
		Str("right", r.RightSource).
		Logger()
	for _, c := range r.Conflicts {
		logger.Warn().
			Str("key", strings.Join(c.Keys, "/")).
			Str("column", c.Column).
			Str("left_value", c.Left).
			Str("right_value", c.Right).
			Msg("Conflicting values")
	}
	return Proceed, nil
}

// Interactive returns the policy that confirms each conflict through
// the prompter before the run continues. Answering "all" accepts every
// remaining conflict of the run without further prompts; any rejection
// aborts. A nil prompter falls back to standard input.
func Interactive(p Prompter) Policy {
	if p == nil {
		p = NewStdinPrompter()
	}
	return &interactivePolicy{prompter: p}
}

type interactivePolicy struct {
	prompter  Prompter
	acceptAll bool
}

func (*interactivePolicy) Name() string        { return "prompt" }
func (*interactivePolicy) Description() string { return "Confirm each conflict before continuing" }

func (p *interactivePolicy) Resolve(ctx context.Context, r *Report) (Decision, error) {
	for _, c := range r.Conflicts {
		if p.acceptAll {
			break
		}
		if ctx.Err() != nil {
			return Abort, errors.ErrCanceled
		}
		answer, err := p.prompter.Confirm(fmt.Sprintf("Accept conflict %s? [y/N/all] ", c))
		if err != nil {
			return Abort, err
		}
		switch answer {
		case AnswerAll:
			p.acceptAll = true
		case AnswerYes:
		default:
			return Abort, &ConflictError{Report: r}
		}
	}
	return Proceed, nil
}

// Answer is a prompter's reply to a single confirmation.
type Answer int

const (
	// AnswerNo rejects the conflict.
	AnswerNo Answer = iota
	// AnswerYes accepts the conflict.
	AnswerYes
	// AnswerAll accepts every remaining conflict without prompting.
	AnswerAll
)

// Prompter asks the user to confirm a single conflict. Implementations
// outside interactive terminals script their answers.
type Prompter interface {
	Confirm(prompt string) (Answer, error)
}

// ReaderPrompter reads confirmation replies line by line from an input
// stream.
type ReaderPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewReaderPrompter returns a Prompter writing prompts to out and
// reading replies from in.
func NewReaderPrompter(in io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{reader: bufio.NewReader(in), out: out}
}

// NewStdinPrompter returns a Prompter on standard input and output.
func NewStdinPrompter() *ReaderPrompter {
	return NewReaderPrompter(os.Stdin, os.Stdout)
}

// Confirm writes the prompt and interprets the reply. Empty input and
// unrecognized words count as "no".
func (p *ReaderPrompter) Confirm(prompt string) (Answer, error) {
	fmt.Fprint(p.out, prompt)
	response, err := p.reader.ReadString('\n')
	if err != nil && response == "" {
		return AnswerNo, err
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return AnswerYes, nil
	case "a", "all":
		return AnswerAll, nil
	default:
		return AnswerNo, nil
	}
}
