package report

import (
	"bufio"
	"io"
	"iter"
)

// LineWriter writes rendered report lines to an output.
type LineWriter struct {
	output io.Writer
}

// NewLineWriter creates a LineWriter that outputs to the given writer.
func NewLineWriter(output io.Writer) *LineWriter {
	return &LineWriter{output: output}
}

// Write consumes lines and writes each one followed by a newline.
// It returns the number of lines written.
func (w *LineWriter) Write(lines iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w.output)
	n := 0
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
