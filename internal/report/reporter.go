package report

import (
	"iter"
	"log/slog"
	"strconv"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/log"
)

// Footer is printed after the last failure.
const Footer = "-------------------------"

// FailureReporter drives a FailureHandler over the results of a check run
// and counts the failures.
type FailureReporter struct {
	handler *FailureHandler
	printer *log.Printer
	logger  *slog.Logger
}

// NewFailureReporter creates a FailureReporter. Dividers and notices go to
// printer; the totals are logged to logger.
func NewFailureReporter(handler *FailureHandler, printer *log.Printer, logger *slog.Logger) *FailureReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FailureReporter{handler: handler, printer: printer, logger: logger}
}

// Report presents every failure and returns how many were presented.
// The fail-fast sentinel ends the run and is not counted. An error from the
// results is returned unchanged together with the count so far.
func (r *FailureReporter) Report(results iter.Seq2[check.Failure, error]) (int, error) {
	numFailed := 0
	for failure, err := range results {
		if err != nil {
			return numFailed, err
		}
		if failure.IsSentinel() {
			r.printer.Info("stopping after one failure")
			break
		}
		if failure.Data == nil {
			return numFailed, check.ErrMissingEntity
		}
		if r.handler.HasDivider && numFailed > 0 {
			r.printer.Info(r.handler.Divider)
		}
		numFailed++
		if err := r.handler.Handle(failure); err != nil {
			return numFailed, err
		}
	}
	if err := r.handler.After(); err != nil {
		return numFailed, err
	}

	r.printer.Info(Footer)
	r.logger.Info("total failures: " + strconv.Itoa(numFailed))
	r.logger.Info("done checking")
	return numFailed, nil
}
