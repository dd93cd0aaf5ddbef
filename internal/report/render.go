package report

import (
	"iter"
	"slices"
	"strconv"

	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/section"
)

// Banner frames the group names of a split summary.
const Banner = "===================="

// splitSections are the sections shown for each group of a split summary.
var splitSections = []string{"types", "variables"}

// RenderOptions configures Render.
type RenderOptions struct {
	// RelRoot, when set, makes the summary's file cells relative to it.
	RelRoot string

	// SplitSupported makes the summary list supported and unsupported
	// entities separately, showing only their types and variables. The
	// grand total is then the number of entities listed.
	SplitSupported bool
}

// renderer holds the input of a single Render call.
type renderer struct {
	set  *model.AnalyzedSet
	opts RenderOptions
}

// Render returns the lines of the report for set in the given format.
// The format is validated and every section is resolved before the first
// line is produced. The returned sequence is single-pass.
func Render(format Format, set *model.AnalyzedSet, opts RenderOptions) (iter.Seq[string], error) {
	s, err := lookup(format)
	if err != nil {
		return nil, err
	}
	return s.render(&renderer{set: set, opts: opts})
}

func (r *renderer) raw() (iter.Seq[string], error) {
	return func(yield func(string) bool) {
		for e := range r.set.All() {
			for _, line := range e.RenderRaw() {
				if !yield(line) {
					return
				}
			}
		}
	}, nil
}

// briefKinds lists the kinds shown by the brief report, in output order.
var briefKinds = []model.Kind{
	model.KindTypedef,
	model.KindStruct,
	model.KindUnion,
	model.KindEnum,
	model.KindFunction,
	model.KindVariable,
}

func (r *renderer) brief() (iter.Seq[string], error) {
	return func(yield func(string) bool) {
		items := r.set.Entities()
		slices.SortStableFunc(items, (*model.Entity).Compare)
		for _, kind := range briefKinds {
			for _, e := range items {
				if e.Kind != kind {
					continue
				}
				for _, line := range e.RenderBrief() {
					if !yield(line) {
						return
					}
				}
			}
		}
		yield("  total: " + strconv.Itoa(len(items)))
	}, nil
}

func (r *renderer) summary() (iter.Seq[string], error) {
	if r.opts.SplitSupported {
		return r.splitSummary()
	}
	sections, err := BuildSections(r.set, r.opts)
	if err != nil {
		return nil, err
	}
	total := r.set.Len()
	return func(yield func(string) bool) {
		for _, s := range sections {
			for line := range s.Lines() {
				if !yield(line) {
					return
				}
			}
		}
		if !yield("") {
			return
		}
		yield("grand total: " + strconv.Itoa(total))
	}, nil
}

// supportGroup is one half of a split summary.
type supportGroup struct {
	name     string
	sections []*section.Section
}

func (r *renderer) splitSummary() (iter.Seq[string], error) {
	var supported, unsupported []*model.Entity
	for e := range r.set.All() {
		if e.Supported() {
			supported = append(supported, e)
		} else {
			unsupported = append(unsupported, e)
		}
	}

	total := 0
	groups := make([]supportGroup, 0, 2)
	for _, g := range []struct {
		name  string
		items []*model.Entity
	}{{"supported", supported}, {"unsupported", unsupported}} {
		sections, err := buildSections(slices.Values(g.items), splitSections, r.opts)
		if err != nil {
			return nil, err
		}
		for _, s := range sections {
			total += s.Total()
		}
		groups = append(groups, supportGroup{name: g.name, sections: sections})
	}

	return func(yield func(string) bool) {
		for _, g := range groups {
			for _, line := range []string{"", Banner, g.name, Banner} {
				if !yield(line) {
					return
				}
			}
			for _, s := range g.sections {
				for line := range s.Lines() {
					if !yield(line) {
						return
					}
				}
			}
		}
		if !yield("") {
			return
		}
		yield("grand total: " + strconv.Itoa(total))
	}, nil
}

func (r *renderer) full() (iter.Seq[string], error) {
	return func(yield func(string) bool) {
		items := r.set.Entities()
		slices.SortStableFunc(items, func(a, b *model.Entity) int {
			return a.Key().Compare(b.Key())
		})
		if !yield("") {
			return
		}
		for _, e := range items {
			for _, line := range e.RenderFull() {
				if !yield(line) {
					return
				}
			}
			if !yield("") {
				return
			}
		}
		yield("total: " + strconv.Itoa(len(items)))
	}, nil
}

// BuildSections builds the summary sections of set in report order.
func BuildSections(set *model.AnalyzedSet, opts RenderOptions) ([]*section.Section, error) {
	return buildSections(set.All(), section.Names(), opts)
}

func buildSections(entities iter.Seq[*model.Entity], names []string, opts RenderOptions) ([]*section.Section, error) {
	var sopts []section.Option
	if opts.RelRoot != "" {
		sopts = append(sopts, section.WithRelRoot(opts.RelRoot))
	}
	sections := make([]*section.Section, 0, len(names))
	for _, name := range names {
		s, err := section.Build(name, entities, sopts...)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}
