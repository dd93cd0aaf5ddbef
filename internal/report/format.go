package report

import (
	"errors"
	"fmt"
	"iter"
)

// ErrUnsupportedFormat is returned for format names that are not recognized.
// It is a configuration error and is always reported before any output.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects how entities and failures are rendered.
type Format int

const (
	// FormatNone means no format was requested. Failures are logged and
	// entity reports fall back to the summary.
	FormatNone Format = iota
	// FormatRaw passes entities and failures through in their raw form.
	FormatRaw
	// FormatBrief prints one line per entity or failure.
	FormatBrief
	// FormatSummary prints tables grouped by section.
	FormatSummary
	// FormatFull prints a detailed block per entity or failure.
	FormatFull
)

// String returns the format name as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return ""
	case FormatRaw:
		return "raw"
	case FormatBrief:
		return "brief"
	case FormatSummary:
		return "summary"
	case FormatFull:
		return "full"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatNames returns the selectable format names.
func FormatNames() []string {
	return []string{"raw", "brief", "summary", "full"}
}

// ParseFormat converts a format name into a Format. The empty string maps
// to FormatNone.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatNone, nil
	}
	for _, f := range []Format{FormatRaw, FormatBrief, FormatSummary, FormatFull} {
		if f.String() == name {
			return f, nil
		}
	}
	return FormatNone, fmt.Errorf("%w %q (expected one of %v)", ErrUnsupportedFormat, name, FormatNames())
}

// strategy pairs the entity renderer and the failure presenter of a format.
type strategy struct {
	render   func(*renderer) (iter.Seq[string], error)
	failures func(*presenter) *FailureHandler
}

var strategies = map[Format]strategy{
	FormatNone:    {render: (*renderer).summary, failures: (*presenter).plain},
	FormatRaw:     {render: (*renderer).raw, failures: (*presenter).raw},
	FormatBrief:   {render: (*renderer).brief, failures: (*presenter).brief},
	FormatSummary: {render: (*renderer).summary, failures: (*presenter).summary},
	FormatFull:    {render: (*renderer).full, failures: (*presenter).full},
}

func lookup(f Format) (strategy, error) {
	s, ok := strategies[f]
	if !ok {
		return strategy{}, fmt.Errorf("%w %s", ErrUnsupportedFormat, f)
	}
	return s, nil
}
