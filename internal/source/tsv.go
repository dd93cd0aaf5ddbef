package source

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/tables"
)

var (
	// AnalyzedColumns is the header of an analyzed-entity table.
	AnalyzedColumns = []string{"filename", "funcname", "name", "kind", "data", "known", "unsupported"}

	// IgnoredColumns is the header of the ignored-variables table.
	IgnoredColumns = []string{"filename", "funcname", "name", "reason"}

	// KnownColumns is the header of the known-types table.
	KnownColumns = []string{"filename", "funcname", "name", "kind", "declaration"}
)

// ReadAnalyzed reads an analyzed-entity table.
func ReadAnalyzed(r io.Reader) ([]*model.Entity, error) {
	var entities []*model.Entity
	for row, err := range tables.ReadTable(r, AnalyzedColumns) {
		if err != nil {
			return nil, err
		}
		e, err := entityFromRow(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// entityFromRow builds an entity from cells in AnalyzedColumns order.
func entityFromRow(row []string) (*model.Entity, error) {
	kind, err := model.ParseKind(row[3])
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", row, err)
	}
	known := false
	if row[5] != "" {
		known, err = strconv.ParseBool(row[5])
		if err != nil {
			return nil, fmt.Errorf("row %q: invalid known value %q", row, row[5])
		}
	}
	e := &model.Entity{
		Kind:        kind,
		Name:        row[2],
		Filename:    row[0],
		IsKnown:     known,
		Data:        row[4],
		Unsupported: row[6],
	}
	if row[1] != "" {
		e.Parent = model.ParentLabel(row[1])
	}
	return e, nil
}

// ReadIgnored reads the ignored-variables table into a map from
// declaration ID to reason.
func ReadIgnored(r io.Reader) (map[model.DeclID]string, error) {
	ignored := make(map[model.DeclID]string)
	for row, err := range tables.ReadTable(r, IgnoredColumns) {
		if err != nil {
			return nil, err
		}
		id := model.DeclID{Filename: row[0], FuncName: row[1], Name: row[2]}
		ignored[id] = row[3]
	}
	return ignored, nil
}

// ReadKnown reads a known-types table. Every entity it returns is a
// resolved type declaration.
func ReadKnown(r io.Reader) ([]*model.Entity, error) {
	var entities []*model.Entity
	for row, err := range tables.ReadTable(r, KnownColumns) {
		if err != nil {
			return nil, err
		}
		kind, err := model.ParseKind(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row, err)
		}
		e := &model.Entity{
			Kind:     kind,
			Name:     row[2],
			Filename: row[0],
			IsKnown:  true,
			Data:     row[4],
		}
		if row[1] != "" {
			e.Parent = model.ParentLabel(row[1])
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// WriteKnown writes the type declarations of set as a known-types table.
// With a non-empty relroot, filenames are written relative to it.
func WriteKnown(w io.Writer, set *model.AnalyzedSet, relroot string) error {
	return tables.WriteTable(w, KnownColumns, knownRows(set, relroot))
}

func knownRows(set *model.AnalyzedSet, relroot string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for e := range set.All() {
			if !e.Kind.IsTypeDecl() {
				continue
			}
			filename := e.Filename
			if relroot != "" && filename != "" {
				filename = model.RelPath(filename, relroot)
			}
			if !yield([]string{filename, e.FuncName(), e.Name, e.Kind.String(), e.Data}) {
				return
			}
		}
	}
}
