package report

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/declscan/internal/model"
)

// TestLineWriter tests writing a line sequence.
func TestLineWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewLineWriter(&buf).Write(slices.Values([]string{"", "types:", "total: 0"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
	if buf.String() != "\ntypes:\ntotal: 0\n" {
		t.Errorf("got %q", buf.String())
	}
}

// TestMarkdownWriter tests the Markdown summary document.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes a table per section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := NewMarkdownWriter(&buf).Write(model.NewAnalyzedSet(geomEntities()...), RenderOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Declaration Summary",
			"## Types",
			"## Functions",
			"## Variables",
			"## Statements",
			"`Point`",
			"`count`",
			"No entries.",
			"grand total: 3",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("relative file cells", func(t *testing.T) {
		t.Parallel()

		set := model.NewAnalyzedSet(&model.Entity{Kind: model.KindFunction, Name: "add", Filename: "/src/geom.c"})
		var buf bytes.Buffer
		if err := NewMarkdownWriter(&buf).Write(set, RenderOptions{RelRoot: "/src"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "`geom.c`") || strings.Contains(buf.String(), "/src/geom.c") {
			t.Errorf("expected relative file cell, got:\n%s", buf.String())
		}
	})
}
