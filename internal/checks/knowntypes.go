package checks

import (
	"iter"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/model"
)

// KnownTypesCheck reports type declarations whose type the analyzer could
// not resolve.
type KnownTypesCheck struct{}

// NewKnownTypesCheck creates a KnownTypesCheck.
func NewKnownTypesCheck() *KnownTypesCheck {
	return &KnownTypesCheck{}
}

// Name returns the check name.
func (c *KnownTypesCheck) Name() string {
	return "known-types"
}

// Description returns the check description.
func (c *KnownTypesCheck) Description() string {
	return "fail on type declarations that could not be resolved"
}

// Check yields a failure for every unresolved type declaration.
func (c *KnownTypesCheck) Check(set *model.AnalyzedSet) iter.Seq2[check.Failure, error] {
	return func(yield func(check.Failure, error) bool) {
		for e := range set.All() {
			if !e.Kind.IsTypeDecl() || e.IsKnown {
				continue
			}
			msg := "type unknown\t" + e.ShortKey()
			if !yield(check.Failure{Data: e, Message: msg}, nil) {
				return
			}
		}
	}
}
