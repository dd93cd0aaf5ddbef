package section

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/nao1215/declscan/internal/model"
)

// ErrUnknownSection is returned when a section name cannot be resolved.
var ErrUnknownSection = errors.New("unknown section")

// Divider separates the header and the totals from the table rows.
const Divider = "--------------------"

// Spec describes how one section is built: the columns it shows, which
// entity kinds belong to it, and how its rows are ordered.
type Spec struct {
	Columns []string
	Match   func(model.Kind) bool
	SortKey func(*model.Entity) []string
}

// entry is a section table value: either a concrete Spec or an alias to
// another section name.
type entry struct {
	spec  *Spec
	alias string
}

var (
	typesSpec = &Spec{
		Columns: []string{"kind", "name", "data", "file"},
		Match:   model.Kind.IsTypeDecl,
		SortKey: func(e *model.Entity) []string {
			return []string{e.Kind.String(), e.Filename, e.Name}
		},
	}
	functionsSpec = &Spec{
		Columns: []string{"name", "data", "file"},
		Match:   func(k model.Kind) bool { return k == model.KindFunction },
		SortKey: func(e *model.Entity) []string {
			return []string{e.Filename, e.Name}
		},
	}
	variablesSpec = &Spec{
		Columns: []string{"name", "parent", "data", "file"},
		Match:   func(k model.Kind) bool { return k == model.KindVariable },
		SortKey: scopedSortKey,
	}
	statementsSpec = &Spec{
		Columns: []string{"file", "parent", "data"},
		Match:   func(k model.Kind) bool { return k == model.KindStatement },
		SortKey: scopedSortKey,
	}
)

func scopedSortKey(e *model.Entity) []string {
	return []string{e.Filename, e.FuncName(), e.Name}
}

// table maps section names to specs or aliases.
var table = map[string]entry{
	"types":      {spec: typesSpec},
	"typedefs":   {alias: "types"},
	"structs":    {alias: "types"},
	"unions":     {alias: "types"},
	"enums":      {alias: "types"},
	"functions":  {spec: functionsSpec},
	"variables":  {spec: variablesSpec},
	"statements": {spec: statementsSpec},
}

// kindSections maps each kind to the section that lists it.
var kindSections = map[model.Kind]string{
	model.KindTypedef:   "typedefs",
	model.KindStruct:    "structs",
	model.KindUnion:     "unions",
	model.KindEnum:      "enums",
	model.KindFunction:  "functions",
	model.KindVariable:  "variables",
	model.KindStatement: "statements",
}

// Names returns the canonical section names in report order.
func Names() []string {
	return []string{"types", "functions", "variables", "statements"}
}

// Resolve follows the alias chain for name. A kind value such as "struct"
// is first replaced by its section name ("structs"). The returned name is
// the one displayed in the section header.
func Resolve(name string) (string, *Spec, error) {
	if kind, err := model.ParseKind(name); err == nil {
		name = kindSections[kind]
	}

	key := name
	for range len(table) + 1 {
		e, ok := table[key]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownSection, key)
		}
		if e.spec != nil {
			return name, e.spec, nil
		}
		key = e.alias
	}
	return "", nil, fmt.Errorf("%w: alias cycle at %q", ErrUnknownSection, name)
}

// Option configures Build.
type Option func(*Section)

// WithRelRoot rewrites "file" cells relative to root when rendering.
func WithRelRoot(root string) Option {
	return func(s *Section) {
		s.relRoot = root
	}
}

// Section is a filtered, sorted view of entities ready to be rendered.
type Section struct {
	// Name is the section name shown in the header.
	Name string

	// Columns are the column names in display order.
	Columns []string

	// Items are the matching entities in section order.
	Items []*model.Entity

	relRoot string
}

// Build resolves name, then filters and sorts entities for that section.
func Build(name string, entities iter.Seq[*model.Entity], opts ...Option) (*Section, error) {
	display, spec, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	var items []*model.Entity
	for e := range entities {
		if spec.Match(e.Kind) {
			items = append(items, e)
		}
	}
	slices.SortStableFunc(items, func(a, b *model.Entity) int {
		return slices.Compare(spec.SortKey(a), spec.SortKey(b))
	})

	s := &Section{
		Name:    display,
		Columns: slices.Clone(spec.Columns),
		Items:   items,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Total returns the number of rows in the section.
func (s *Section) Total() int {
	return len(s.Items)
}

// Lines renders the section: a blank line, "<name>:", a blank line, then
// the table with its header, dividers and "total: N" line.
// A row that cannot be rendered means the section was built with a column
// entities do not have, and Lines panics.
func (s *Section) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range []string{"", s.Name + ":", ""} {
			if !yield(line) {
				return
			}
		}
		for line := range s.table() {
			if !yield(line) {
				return
			}
		}
	}
}

func (s *Section) table() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(strings.Join(s.Columns, "\t")) || !yield(Divider) {
			return
		}
		total := 0
		for row, err := range s.Rows() {
			if err != nil {
				panic(fmt.Sprintf("section %s: %v", s.Name, err))
			}
			if !yield(strings.Join(row, "\t")) {
				return
			}
			total++
		}
		if !yield(Divider) {
			return
		}
		yield("total: " + strconv.Itoa(total))
	}
}

// Rows yields the rendered cells of each item.
func (s *Section) Rows() iter.Seq2[[]string, error] {
	fileIndex := slices.Index(s.Columns, "file")
	return func(yield func([]string, error) bool) {
		for _, item := range s.Items {
			row, err := item.RowData(s.Columns)
			if err != nil {
				yield(nil, err)
				return
			}
			if s.relRoot != "" && fileIndex >= 0 && row[fileIndex] != model.EmptyValue {
				row[fileIndex] = model.RelPath(row[fileIndex], s.relRoot)
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}
