package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/section"
)

// MarkdownWriter renders the summary sections of an analyzed set as a
// Markdown document with one table per section.
type MarkdownWriter struct {
	output io.Writer
	title  cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		output: output,
		title:  cases.Title(language.English),
	}
}

// Write renders set. Sections are built before anything is written.
func (w *MarkdownWriter) Write(set *model.AnalyzedSet, opts RenderOptions) error {
	sections, err := BuildSections(set, opts)
	if err != nil {
		return err
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("Declaration Summary")
	md.PlainText("")

	for _, s := range sections {
		if err := w.writeSection(md, s); err != nil {
			return err
		}
	}

	md.HorizontalRule()
	md.PlainTextf("grand total: %d", set.Len())
	return md.Build()
}

func (w *MarkdownWriter) writeSection(md *markdown.Markdown, s *section.Section) error {
	md.H2(w.title.String(s.Name))
	md.PlainText("")

	if s.Total() == 0 {
		md.PlainText("No entries.")
		md.PlainText("")
		return nil
	}

	header := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = w.title.String(c)
	}
	var rows [][]string
	for row, err := range s.Rows() {
		if err != nil {
			return err
		}
		for i, cell := range row {
			row[i] = "`" + cell + "`"
		}
		rows = append(rows, row)
	}
	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
	md.PlainText("total: " + strconv.Itoa(s.Total()))
	md.PlainText("")
	return nil
}
