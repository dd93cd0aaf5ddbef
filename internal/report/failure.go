package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/log"
	"github.com/nao1215/declscan/internal/model"
)

// FailureHandler presents failures in one format.
type FailureHandler struct {
	// Handle presents a single failure.
	Handle func(check.Failure) error

	// After runs once after the last failure.
	After func() error

	// Divider is printed between two failures when HasDivider is set.
	Divider    string
	HasDivider bool
}

// presenter holds what the failure handlers write to.
type presenter struct {
	out       io.Writer
	logger    *slog.Logger
	verbosity int
}

// NewFailureHandler returns the failure handler for format. Failures are
// printed to out, except for FormatNone which reports them through logger.
func NewFailureHandler(format Format, out io.Writer, logger *slog.Logger, verbosity int) (*FailureHandler, error) {
	s, err := lookup(format)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := s.failures(&presenter{out: out, logger: logger, verbosity: verbosity})
	if h.After == nil {
		h.After = func() error { return nil }
	}
	return h, nil
}

func (p *presenter) plain() *FailureHandler {
	return &FailureHandler{
		Handle: func(f check.Failure) error {
			data := f.Data.Repr()
			if p.verbosity >= log.DefaultVerbosity {
				p.logger.Info("failure: " + f.Message)
				p.logger.Info("data:    " + data)
				return nil
			}
			p.logger.Warn(fmt.Sprintf("failure: %s (data: %s)", f.Message, data))
			return nil
		},
		HasDivider: true,
	}
}

func (p *presenter) raw() *FailureHandler {
	return &FailureHandler{
		Handle: func(f check.Failure) error {
			_, err := fmt.Fprintf(p.out, "%q %s\n", f.Message, f.Data.Repr())
			return err
		},
	}
}

func (p *presenter) brief() *FailureHandler {
	return &FailureHandler{
		Handle: func(f check.Failure) error {
			name := f.Data.Name
			if funcname := f.Data.FuncName(); funcname != "" {
				name = "(" + funcname + ")." + name
			}
			short, _, _ := strings.Cut(f.Message, "\t")
			_, err := fmt.Fprintf(p.out, "%s:%s - %s\n", f.Data.Filename, name, short)
			return err
		},
	}
}

func (p *presenter) summary() *FailureHandler {
	return &FailureHandler{
		Handle: func(f check.Failure) error {
			funcname := f.Data.FuncName()
			if funcname == "" {
				funcname = model.EmptyValue
			}
			fields := []string{
				runewidth.FillRight(f.Data.Filename, 35),
				runewidth.FillRight(funcname, 35),
				runewidth.FillRight(f.Data.Name, 40),
				f.Message,
			}
			_, err := fmt.Fprintln(p.out, strings.Join(fields, "\t"))
			return err
		},
	}
}

func (p *presenter) full() *FailureHandler {
	return &FailureHandler{
		Handle: func(f check.Failure) error {
			e := f.Data
			name := e.Name
			if e.Kind == model.KindVariable {
				name = e.ShortKey()
			}
			funcname := e.FuncName()
			if funcname == "" {
				funcname = model.EmptyValue
			}
			block := []string{
				fmt.Sprintf("%s '%s' failed (%s)", e.Kind, name, f.Message),
				"  file:         " + e.Filename,
				"  func:         " + funcname,
				"  name:         " + e.Name,
				"  data:         ...",
				"  type unknown: " + e.KnownFlag(),
			}
			for _, line := range block {
				if _, err := fmt.Fprintln(p.out, line); err != nil {
					return err
				}
			}
			return nil
		},
		HasDivider: true,
	}
}
