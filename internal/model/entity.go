package model

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownColumn is returned when an entity is asked to render a column
// it does not know about.
var ErrUnknownColumn = errors.New("unknown column")

// EmptyValue is rendered in place of empty column values.
const EmptyValue = "-"

// Parent is the enclosing scope of an entity. It is either absent, a plain
// label (typically a function name read from a data file), or a reference to
// another analyzed entity. The referenced entity is never owned by the child.
type Parent struct {
	label  string
	entity *Entity
}

// ParentLabel returns a Parent that is a plain label.
func ParentLabel(label string) Parent {
	return Parent{label: label}
}

// ParentEntity returns a Parent that refers to another entity.
func ParentEntity(e *Entity) Parent {
	return Parent{entity: e}
}

// IsZero reports whether the parent is absent.
func (p Parent) IsZero() bool {
	return p.entity == nil && p.label == ""
}

// Entity returns the referenced entity, or nil for labels.
func (p Parent) Entity() *Entity {
	return p.entity
}

// Name returns the label, or the referenced entity's name.
func (p Parent) Name() string {
	if p.entity != nil {
		return p.entity.Name
	}
	return p.label
}

// String implements fmt.Stringer.
func (p Parent) String() string {
	return p.Name()
}

// Entity is a single program construct discovered by the external analyzer.
//
// Entities are created by the analyzer and are read-only afterwards, with the
// single exception of AnalyzedSet.FixFilenames.
type Entity struct {
	// Kind is the construct's kind.
	Kind Kind

	// Name is the identifier. It is not unique across files or scopes.
	Name string

	// Filename is the source file path, or empty if unknown.
	Filename string

	// Parent is the enclosing function for local variables and statements.
	Parent Parent

	// IsKnown is set by the analyzer when the entity's type was resolved.
	IsKnown bool

	// Data is the declaration text as reported by the analyzer.
	Data string

	// Unsupported holds the analyzer's reason for rejecting the entity.
	// Empty means the entity is supported.
	Unsupported string
}

// Supported reports whether the analyzer accepted the entity.
func (e *Entity) Supported() bool {
	return e.Unsupported == ""
}

// FuncName returns the name of the enclosing function, if any.
func (e *Entity) FuncName() string {
	return e.Parent.Name()
}

// ShortKey returns a short display identifier: "struct X" for tagged types,
// "func().name" for function-scoped entities, and the bare name otherwise.
func (e *Entity) ShortKey() string {
	switch e.Kind {
	case KindStruct, KindUnion, KindEnum:
		return e.Kind.String() + " " + e.Name
	}
	if funcname := e.FuncName(); funcname != "" {
		return funcname + "()." + e.Name
	}
	return e.Name
}

// ID returns the identifier used by ignore lists.
func (e *Entity) ID() DeclID {
	return DeclID{Filename: e.Filename, FuncName: e.FuncName(), Name: e.Name}
}

// Key returns the entity's stable sort identifier.
func (e *Entity) Key() Key {
	return Key{
		Filename: e.Filename,
		FuncName: e.FuncName(),
		Kind:     e.Kind,
		Name:     e.Name,
	}
}

// Compare orders entities by kind, then filename, enclosing function and name.
// It is the natural order used by the brief report.
func (e *Entity) Compare(other *Entity) int {
	return cmp.Or(
		cmp.Compare(e.Kind, other.Kind),
		cmp.Compare(e.Filename, other.Filename),
		cmp.Compare(e.FuncName(), other.FuncName()),
		cmp.Compare(e.Name, other.Name),
	)
}

// Column renders the value of a single named column.
// Empty values are rendered as EmptyValue.
func (e *Entity) Column(name string) (string, error) {
	var value string
	switch name {
	case "kind":
		value = e.Kind.String()
	case "name":
		value = e.Name
	case "data":
		value = e.Data
	case "file", "filename":
		value = e.Filename
	case "parent", "funcname":
		value = e.FuncName()
	case "known":
		value = strconv.FormatBool(e.IsKnown)
	case "unsupported":
		value = e.Unsupported
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if value == "" {
		value = EmptyValue
	}
	return value, nil
}

// RowData renders the given columns in order.
func (e *Entity) RowData(columns []string) ([]string, error) {
	row := make([]string, len(columns))
	for i, c := range columns {
		v, err := e.Column(c)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// Repr returns a single-line, unambiguous rendering of the entity.
func (e *Entity) Repr() string {
	return fmt.Sprintf("Entity(kind=%s, name=%q, file=%q, parent=%q, known=%t, data=%q)",
		e.Kind, e.Name, e.Filename, e.FuncName(), e.IsKnown, e.Data)
}

// RenderRaw returns the raw rendering used by the raw report.
func (e *Entity) RenderRaw() []string {
	return []string{e.Repr()}
}

// RenderBrief returns the one-line rendering used by the brief report.
func (e *Entity) RenderBrief() []string {
	filename := e.Filename
	if filename == "" {
		filename = EmptyValue
	}
	return []string{fmt.Sprintf("  %-10s %s:%s", e.Kind, filename, e.ShortKey())}
}

// RenderFull returns the multi-line dump used by the full report.
func (e *Entity) RenderFull() []string {
	return []string{
		fmt.Sprintf("%s %q", e.Kind, e.ShortKey()),
		"  file:         " + orEmpty(e.Filename),
		"  func:         " + orEmpty(e.FuncName()),
		"  name:         " + e.Name,
		"  data:         " + orEmpty(e.Data),
		"  type unknown: " + e.KnownFlag(),
	}
}

// KnownFlag renders IsKnown the way the detailed reports show it.
func (e *Entity) KnownFlag() string {
	if e.IsKnown {
		return "yes"
	}
	return "*** NO ***"
}

func orEmpty(s string) string {
	if s == "" {
		return EmptyValue
	}
	return s
}

// DeclID identifies a declaration by file, enclosing function and name.
type DeclID struct {
	Filename string
	FuncName string
	Name     string
}

// Key is the comparable sort identifier of an entity.
type Key struct {
	Filename string
	FuncName string
	Kind     Kind
	Name     string
}

// Compare orders keys by filename, enclosing function, kind and name.
func (k Key) Compare(other Key) int {
	return cmp.Or(
		cmp.Compare(k.Filename, other.Filename),
		cmp.Compare(k.FuncName, other.FuncName),
		cmp.Compare(k.Kind, other.Kind),
		cmp.Compare(k.Name, other.Name),
	)
}
