package check

import (
	"errors"
	"fmt"
	"iter"

	"github.com/nao1215/declscan/internal/model"
)

var (
	// ErrUnknownCheck is returned when a requested check is not registered.
	ErrUnknownCheck = errors.New("unknown check")

	// ErrDuplicateCheck is returned when two checks share a name.
	ErrDuplicateCheck = errors.New("duplicate check")

	// ErrMissingEntity is returned by Runner.Run when a check yields a
	// failure without an entity.
	ErrMissingEntity = errors.New("failure has no entity")
)

// Failure is a single entity failing a single check. Failures are data, not
// errors: a run that finds problems still completes normally.
//
// The fail-fast sentinel is a Failure produced only by Runner and
// StopFailure. It has no Data.
type Failure struct {
	// Data is the entity that failed.
	Data *model.Entity

	// Message describes the problem. It may hold several tab separated
	// segments; the first one is the short description.
	Message string

	stop bool
}

// StopFailure returns the fail-fast sentinel.
func StopFailure() Failure {
	return Failure{stop: true}
}

// IsSentinel reports whether f is the fail-fast stop marker.
func (f Failure) IsSentinel() bool {
	return f.stop
}

// Check is a named validation applied to an analyzed set.
type Check interface {
	// Name returns the name used to select the check.
	Name() string

	// Description returns a one-line summary for help output.
	Description() string

	// Check yields one Failure per failing entity. A non-nil error aborts the
	// run and is returned to the caller unchanged.
	Check(set *model.AnalyzedSet) iter.Seq2[Failure, error]
}

// Func adapts a function to the Check interface.
type Func struct {
	name        string
	description string
	fn          func(*model.AnalyzedSet) iter.Seq2[Failure, error]
}

// NewFunc creates a Check from a function.
func NewFunc(name, description string, fn func(*model.AnalyzedSet) iter.Seq2[Failure, error]) *Func {
	return &Func{name: name, description: description, fn: fn}
}

// Name returns the check name.
func (f *Func) Name() string {
	return f.name
}

// Description returns the check description.
func (f *Func) Description() string {
	return f.description
}

// Check runs the wrapped function.
func (f *Func) Check(set *model.AnalyzedSet) iter.Seq2[Failure, error] {
	return f.fn(set)
}

// Registry holds the checks that can be selected by name.
// It is populated once at startup and not modified during a run.
type Registry struct {
	checks []Check
	byName map[string]Check
}

// NewRegistry creates a registry holding the given checks.
func NewRegistry(checks ...Check) (*Registry, error) {
	r := &Registry{byName: make(map[string]Check)}
	for _, c := range checks {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a check. Names must be unique.
func (r *Registry) Register(c Check) error {
	if _, ok := r.byName[c.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCheck, c.Name())
	}
	r.checks = append(r.checks, c)
	r.byName[c.Name()] = c
	return nil
}

// Names returns the registered check names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.checks))
	for i, c := range r.checks {
		names[i] = c.Name()
	}
	return names
}

// All returns every registered check in registration order.
func (r *Registry) All() []Check {
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Lookup returns the named checks in the requested order. Every name is
// validated before anything is returned. With no names, all registered
// checks are returned.
func (r *Registry) Lookup(names ...string) ([]Check, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		c, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
		}
		checks = append(checks, c)
	}
	return checks, nil
}
