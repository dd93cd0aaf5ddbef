package checks

import (
	"fmt"
	"iter"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/model"
)

// unknownReason is reported when the analyzer gave no reason.
const unknownReason = "???"

// GlobalsCheck reports variables the analyzer marked as unsupported.
// Variables listed in the ignore list are skipped.
type GlobalsCheck struct {
	// ignored maps declarations to the reason they are ignored.
	ignored map[model.DeclID]string
}

// NewGlobalsCheck creates a GlobalsCheck that skips the given declarations.
func NewGlobalsCheck(ignored map[model.DeclID]string) *GlobalsCheck {
	if ignored == nil {
		ignored = make(map[model.DeclID]string)
	}
	return &GlobalsCheck{ignored: ignored}
}

// Name returns the check name.
func (c *GlobalsCheck) Name() string {
	return "globals"
}

// Description returns the check description.
func (c *GlobalsCheck) Description() string {
	return "fail on global and static variables the analyzer does not support"
}

// Check yields a failure for every unsupported, non-ignored variable.
func (c *GlobalsCheck) Check(set *model.AnalyzedSet) iter.Seq2[check.Failure, error] {
	return func(yield func(check.Failure, error) bool) {
		for e := range set.All() {
			if e.Kind != model.KindVariable || e.Supported() {
				continue
			}
			if _, ok := c.ignored[e.ID()]; ok {
				continue
			}
			if !yield(check.Failure{Data: e, Message: globalsMessage(e)}, nil) {
				return
			}
		}
	}
}

func globalsMessage(e *model.Entity) string {
	reason := e.Unsupported
	if reason == "" {
		reason = unknownReason
	}
	return fmt.Sprintf("not supported (%s)\t%s", reason, e.Data)
}
