package log

import (
	"fmt"
	"io"
)

// Printer writes unstructured lines gated by verbosity.
type Printer struct {
	w         io.Writer
	verbosity int
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, verbosity int) *Printer {
	return &Printer{w: w, verbosity: verbosity}
}

// Verbosity returns the printer's verbosity.
func (p *Printer) Verbosity() int {
	return p.verbosity
}

// Info prints a line when verbosity is at least DefaultVerbosity.
func (p *Printer) Info(a ...any) {
	if p.verbosity < DefaultVerbosity {
		return
	}
	fmt.Fprintln(p.w, a...)
}

// Debug prints a line when verbosity is above DefaultVerbosity.
func (p *Printer) Debug(a ...any) {
	if p.verbosity <= DefaultVerbosity {
		return
	}
	fmt.Fprintln(p.w, a...)
}
