package checks

import (
	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/model"
)

// Options configures the built-in checks.
type Options struct {
	// Ignored lists declarations the globals check skips.
	Ignored map[model.DeclID]string
}

// DefaultRegistry creates a registry with all built-in checks registered.
func DefaultRegistry(opts Options) *check.Registry {
	reg, err := check.NewRegistry(
		NewGlobalsCheck(opts.Ignored),
		NewKnownTypesCheck(),
	)
	if err != nil {
		// The built-in names are fixed and distinct.
		panic(err)
	}
	return reg
}
