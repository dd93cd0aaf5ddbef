// Package check runs named validation checks against an analyzed set.
//
// Checks are registered in a Registry value created at startup and selected
// by name. A Runner applies the selected checks in order and yields their
// failures lazily:
//
//	reg, _ := check.NewRegistry(myCheck)
//	runner, err := check.NewRunnerFromRegistry(reg, []string{"globals"},
//	    check.WithFailFast(true),
//	)
//	for failure, err := range runner.Run(set) {
//	    if err != nil {
//	        return err
//	    }
//	    if failure.IsSentinel() {
//	        break // fail-fast stop
//	    }
//	    ...
//	}
//
// A failing entity is not an error. Errors are reserved for unknown check
// names, reported before anything runs, and for errors raised by a check
// itself, which are passed through unchanged.
package check
