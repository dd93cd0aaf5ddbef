package tables

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

var (
	// ErrBadHeader is returned when a table does not start with the expected header.
	ErrBadHeader = errors.New("bad header")

	// ErrBadRow is returned for rows with the wrong number of cells, and for
	// cells that cannot be written without breaking the row apart.
	ErrBadRow = errors.New("bad row")
)

// Empty is the cell value written for, and read back as, an empty string.
const Empty = "-"

// Separator separates the columns of a row.
const Separator = "\t"

// maxLineSize bounds a single row; declarations can be long.
const maxLineSize = 1024 * 1024

// ReadTable validates the header of r and yields each remaining row.
// Cells are trimmed and Empty cells are returned as "". Every row must
// have as many cells as the header. Cells are taken literally; quotes have
// no special meaning.
func ReadTable(r io.Reader, header []string) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		want := strings.Join(header, Separator)
		seenHeader := false
		lineno := 0
		for sc.Scan() {
			lineno++
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}
			cells := splitRow(line)

			if !seenHeader {
				if got := strings.Join(cells, Separator); got != want {
					yield(nil, fmt.Errorf("%w %q (expected %q)", ErrBadHeader, got, want))
					return
				}
				seenHeader = true
				continue
			}

			if len(cells) != len(header) {
				yield(nil, fmt.Errorf("%w at line %d: got %d cells, expected %d", ErrBadRow, lineno, len(cells), len(header)))
				return
			}
			for i, cell := range cells {
				if cell == Empty {
					cells[i] = ""
				}
			}
			if !yield(cells, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read table: %w", err))
			return
		}
		if !seenHeader {
			yield(nil, fmt.Errorf("%w: empty table (expected %q)", ErrBadHeader, want))
		}
	}
}

// WriteTable writes header followed by rows, one tab separated line each.
// Empty cells are written as Empty. Cells are written as-is, so a cell
// holding a tab or a line break is rejected.
func WriteTable(w io.Writer, header []string, rows iter.Seq[[]string]) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(header, Separator) + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("%w %q (expected %d columns)", ErrBadRow, row, len(header))
		}
		record := make([]string, len(row))
		for i, cell := range row {
			if strings.ContainsAny(cell, "\t\r\n") {
				return fmt.Errorf("%w: cell %q of %s contains a tab or line break", ErrBadRow, cell, header[i])
			}
			if cell == "" {
				cell = Empty
			}
			record[i] = cell
		}
		if _, err := bw.WriteString(strings.Join(record, Separator) + "\n"); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return bw.Flush()
}

func splitRow(line string) []string {
	cells := strings.Split(line, Separator)
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}
