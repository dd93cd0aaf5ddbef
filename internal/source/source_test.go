package source

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/tables"
)

const geomTSV = "filename\tfuncname\tname\tkind\tdata\tknown\tunsupported\n" +
	"geom.h\t-\tPoint\ttypedef\tstruct point\ttrue\t-\n" +
	"geom.c\t-\tadd\tfunction\tint add(int, int)\ttrue\t-\n" +
	"geom.c\tadd\tcount\tvariable\tstatic int count\tfalse\tmutable local\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// createDeclDB creates a SQLite input with the given rows.
func createDeclDB(t *testing.T, path string, rows [][]any) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE decls (
			filename TEXT, funcname TEXT, name TEXT, kind TEXT,
			data TEXT, known BOOLEAN, unsupported TEXT
		)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	for _, row := range rows {
		if _, err := db.ExecContext(ctx, `INSERT INTO decls VALUES (?, ?, ?, ?, ?, ?, ?)`, row...); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
}

// TestReadAnalyzed tests parsing analyzed-entity tables.
func TestReadAnalyzed(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()

		entities, err := ReadAnalyzed(strings.NewReader(geomTSV))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entities) != 3 {
			t.Fatalf("expected 3 entities, got %d", len(entities))
		}
		point := entities[0]
		if point.Kind != model.KindTypedef || point.Name != "Point" || !point.IsKnown || point.Data != "struct point" {
			t.Errorf("unexpected entity %s", point.Repr())
		}
		count := entities[2]
		if count.FuncName() != "add" || count.Unsupported != "mutable local" || count.IsKnown {
			t.Errorf("unexpected entity %s", count.Repr())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		input := "filename\tfuncname\tname\tkind\tdata\tknown\tunsupported\na.c\t-\tx\tmacro\t-\t-\t-\n"
		_, err := ReadAnalyzed(strings.NewReader(input))
		if !errors.Is(err, model.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})

	t.Run("bad header", func(t *testing.T) {
		t.Parallel()

		_, err := ReadAnalyzed(strings.NewReader("filename\tname\n"))
		if !errors.Is(err, tables.ErrBadHeader) {
			t.Errorf("expected ErrBadHeader, got %v", err)
		}
	})
}

// TestReadIgnored tests parsing the ignored-variables table.
func TestReadIgnored(t *testing.T) {
	t.Parallel()

	input := "filename\tfuncname\tname\treason\n" +
		"Objects/object.c\t-\t_Py_RefTotal\tlegacy\n" +
		"Python/ceval.c\tmain_loop\topcode\t-\n"
	ignored, err := ReadIgnored(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ignored) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ignored))
	}
	if got := ignored[model.DeclID{Filename: "Objects/object.c", Name: "_Py_RefTotal"}]; got != "legacy" {
		t.Errorf("unexpected reason %q", got)
	}
	if _, ok := ignored[model.DeclID{Filename: "Python/ceval.c", FuncName: "main_loop", Name: "opcode"}]; !ok {
		t.Error("expected scoped entry")
	}
}

// TestWriteKnown tests the known-types table.
func TestWriteKnown(t *testing.T) {
	t.Parallel()

	set := model.NewAnalyzedSet(
		&model.Entity{Kind: model.KindTypedef, Name: "Point", Filename: "/src/geom.h", Data: "struct point"},
		&model.Entity{Kind: model.KindFunction, Name: "add", Filename: "/src/geom.c"},
		&model.Entity{Kind: model.KindStruct, Name: "point", Filename: "/src/geom.h"},
	)
	var buf bytes.Buffer
	if err := WriteKnown(&buf, set, "/src"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "filename\tfuncname\tname\tkind\tdeclaration\n" +
		"geom.h\t-\tPoint\ttypedef\tstruct point\n" +
		"geom.h\t-\tpoint\tstruct\t-\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	known, err := ReadKnown(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(known) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(known))
	}
	if known[0].Kind != model.KindTypedef || known[0].Data != "struct point" || !known[0].IsKnown {
		t.Errorf("unexpected entity %s", known[0].Repr())
	}
	if known[1].Kind != model.KindStruct || known[1].Data != "" {
		t.Errorf("unexpected entity %s", known[1].Repr())
	}
}

// TestLoad tests loading several inputs.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("tsv and sqlite in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		tsv := writeFile(t, dir, "geom.tsv", geomTSV)
		dbPath := filepath.Join(dir, "extra.db")
		createDeclDB(t, dbPath, [][]any{
			{"list.c", "", "append", "function", "int append(void)", true, ""},
			{"list.c", "append", "n", "variable", "size_t n", false, nil},
		})

		set, err := Load(context.Background(), []string{dbPath, tsv}, Options{Concurrency: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var names []string
		for e := range set.All() {
			names = append(names, e.Name)
		}
		want := []string{"append", "n", "Point", "add", "count"}
		if strings.Join(names, ",") != strings.Join(want, ",") {
			t.Errorf("got %v, want %v", names, want)
		}
	})

	t.Run("links parents within a file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "geom.tsv", geomTSV)
		set, err := Load(context.Background(), []string{path}, Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entities := set.Entities()
		if entities[2].Parent.Entity() != entities[1] {
			t.Error("expected count to reference the add function")
		}
	})

	t.Run("no paths", func(t *testing.T) {
		t.Parallel()

		if _, err := Load(context.Background(), nil, Options{}); !errors.Is(err, ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.tsv")
		if _, err := Load(context.Background(), []string{missing}, Options{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing database is not created", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.db")
		if _, err := Load(context.Background(), []string{missing}, Options{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := os.Stat(missing); !errors.Is(err, os.ErrNotExist) {
			t.Error("expected database file not to be created")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "geom.tsv", geomTSV)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := Load(ctx, []string{path}, Options{}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
