package check

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/nao1215/declscan/internal/model"
)

// Runner applies an ordered list of checks to an analyzed set.
type Runner struct {
	// checks contains the checks to run, in order.
	checks []Check

	// failFast stops the run after the first failure.
	failFast bool

	// logger is used for structured logging during the run.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFailFast configures the runner to stop after the first failure.
// The failure is followed by a single sentinel Failure with nil Data.
func WithFailFast(failFast bool) Option {
	return func(r *Runner) {
		r.failFast = failFast
	}
}

// WithLogger sets a custom logger for the runner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner for the given checks.
func NewRunner(checks []Check, opts ...Option) *Runner {
	r := &Runner{checks: checks}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// NewRunnerFromRegistry looks up the named checks and creates a Runner.
// Unknown names are reported before any check runs.
func NewRunnerFromRegistry(reg *Registry, names []string, opts ...Option) (*Runner, error) {
	checks, err := reg.Lookup(names...)
	if err != nil {
		return nil, err
	}
	return NewRunner(checks, opts...), nil
}

// CheckNames returns the names of the checks in execution order.
func (r *Runner) CheckNames() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.Name()
	}
	return names
}

// Run lazily yields the failures of every check, in check order and then in
// the order each check produces them. Errors from a check are yielded as-is
// and end the run. A failure without an entity ends the run with
// ErrMissingEntity.
func (r *Runner) Run(set *model.AnalyzedSet) iter.Seq2[Failure, error] {
	return func(yield func(Failure, error) bool) {
		for _, c := range r.checks {
			r.logger.Debug("running check", "check", c.Name())
			for failure, err := range c.Check(set) {
				if err != nil {
					r.logger.Debug("check aborted", "check", c.Name(), "error", err)
					yield(Failure{}, err)
					return
				}
				if failure.Data == nil || failure.IsSentinel() {
					yield(Failure{}, fmt.Errorf("check %q: %w", c.Name(), ErrMissingEntity))
					return
				}
				if !yield(failure, nil) {
					return
				}
				if r.failFast {
					yield(StopFailure(), nil)
					return
				}
			}
		}
	}
}
