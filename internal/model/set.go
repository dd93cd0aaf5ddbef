package model

import (
	"errors"
	"iter"
	"path/filepath"
	"slices"
)

// ErrFilenamesFixed is returned when FixFilenames is called a second time.
var ErrFilenamesFixed = errors.New("filenames already fixed")

// AnalyzedSet is the ordered collection of entities produced by one analysis.
//
// The set may be iterated any number of times; reports such as "summary"
// walk it once per section.
type AnalyzedSet struct {
	entities []*Entity
	fixed    bool
}

// NewAnalyzedSet creates a set holding the given entities in order.
func NewAnalyzedSet(entities ...*Entity) *AnalyzedSet {
	return &AnalyzedSet{entities: slices.Clone(entities)}
}

// All returns a sequence over the entities in insertion order.
// Each call returns an independent sequence.
func (s *AnalyzedSet) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range s.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of entities.
func (s *AnalyzedSet) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the entity slice.
func (s *AnalyzedSet) Entities() []*Entity {
	return slices.Clone(s.entities)
}

// FixFilenames rewrites every filename relative to root. Filenames that
// cannot be made relative are only cleaned. It must run before any check or
// report consumes the set, and only once.
func (s *AnalyzedSet) FixFilenames(root string) error {
	if s.fixed {
		return ErrFilenamesFixed
	}
	s.fixed = true

	for _, e := range s.entities {
		if e.Filename == "" {
			continue
		}
		e.Filename = RelPath(e.Filename, root)
	}
	return nil
}

// RelPath returns filename relative to root. If root is empty or the path
// cannot be expressed relative to it, the cleaned filename is returned.
func RelPath(filename, root string) string {
	filename = filepath.Clean(filename)
	if root == "" {
		return filename
	}
	rel, err := filepath.Rel(root, filename)
	if err != nil {
		return filename
	}
	return rel
}
