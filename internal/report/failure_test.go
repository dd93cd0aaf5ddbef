package report

import (
	"bytes"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/log"
	"github.com/nao1215/declscan/internal/model"
)

func bufFailure() check.Failure {
	return check.Failure{
		Data: &model.Entity{
			Kind:     model.KindVariable,
			Name:     "buf",
			Filename: "geom.c",
			Parent:   model.ParentLabel("add"),
		},
		Message: "unsupported type\tdetails...",
	}
}

func handle(t *testing.T, format Format, verbosity int, failures ...check.Failure) (string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	h, err := NewFailureHandler(format, &out, log.NewLogger(&logs, verbosity), verbosity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range failures {
		if err := h.Handle(f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return out.String(), logs.String()
}

// TestFailureHandler_Brief tests the one-line presentation.
func TestFailureHandler_Brief(t *testing.T) {
	t.Parallel()

	t.Run("scoped name and first segment", func(t *testing.T) {
		t.Parallel()

		out, _ := handle(t, FormatBrief, log.DefaultVerbosity, bufFailure())
		if out != "geom.c:(add).buf - unsupported type\n" {
			t.Errorf("got %q", out)
		}
	})

	t.Run("global name", func(t *testing.T) {
		t.Parallel()

		f := check.Failure{
			Data:    &model.Entity{Kind: model.KindVariable, Name: "cache", Filename: "obj.c"},
			Message: "not supported (mutable global)",
		}
		out, _ := handle(t, FormatBrief, log.DefaultVerbosity, f)
		if out != "obj.c:cache - not supported (mutable global)\n" {
			t.Errorf("got %q", out)
		}
	})
}

// TestFailureHandler_Summary tests the fixed-width fields.
func TestFailureHandler_Summary(t *testing.T) {
	t.Parallel()

	out, _ := handle(t, FormatSummary, log.DefaultVerbosity, bufFailure())
	fields := strings.Split(strings.TrimSuffix(out, "\n"), "\t")
	if len(fields) != 5 {
		t.Fatalf("expected 5 tab separated fields, got %q", fields)
	}
	if fields[0] != "geom.c"+strings.Repeat(" ", 29) {
		t.Errorf("unexpected file field %q", fields[0])
	}
	if fields[1] != "add"+strings.Repeat(" ", 32) {
		t.Errorf("unexpected func field %q", fields[1])
	}
	if fields[2] != "buf"+strings.Repeat(" ", 37) {
		t.Errorf("unexpected name field %q", fields[2])
	}
	if fields[3] != "unsupported type" || fields[4] != "details..." {
		t.Errorf("unexpected message fields %q", fields[3:])
	}

	f := bufFailure()
	f.Data.Parent = model.Parent{}
	out, _ = handle(t, FormatSummary, log.DefaultVerbosity, f)
	if got := strings.Split(out, "\t")[1]; got != "-"+strings.Repeat(" ", 34) {
		t.Errorf("expected placeholder func field, got %q", got)
	}
}

// TestFailureHandler_Raw tests the machine-readable presentation.
func TestFailureHandler_Raw(t *testing.T) {
	t.Parallel()

	f := bufFailure()
	out, _ := handle(t, FormatRaw, log.DefaultVerbosity, f)
	want := `"unsupported type\tdetails..." ` + f.Data.Repr() + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

// TestFailureHandler_Full tests the multi-line block.
func TestFailureHandler_Full(t *testing.T) {
	t.Parallel()

	out, _ := handle(t, FormatFull, log.DefaultVerbosity, bufFailure())
	want := strings.Join([]string{
		`variable 'add().buf' failed (unsupported type` + "\t" + `details...)`,
		"  file:         geom.c",
		"  func:         add",
		"  name:         buf",
		"  data:         ...",
		"  type unknown: *** NO ***",
		"",
	}, "\n")
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

// TestFailureHandler_Plain tests logging of failures without a format.
func TestFailureHandler_Plain(t *testing.T) {
	t.Parallel()

	f := check.Failure{
		Data:    &model.Entity{Kind: model.KindVariable, Name: "x", Filename: "a.c"},
		Message: "not supported",
	}

	t.Run("default verbosity logs two records", func(t *testing.T) {
		t.Parallel()

		out, logs := handle(t, FormatNone, log.DefaultVerbosity, f)
		if out != "" {
			t.Errorf("expected nothing on output, got %q", out)
		}
		want := "failure: not supported\ndata:    " + f.Data.Repr() + "\n"
		if logs != want {
			t.Errorf("got %q, want %q", logs, want)
		}
	})

	t.Run("low verbosity logs one warning", func(t *testing.T) {
		t.Parallel()

		_, logs := handle(t, FormatNone, 2, f)
		want := "failure: not supported (data: " + f.Data.Repr() + ")\n"
		if logs != want {
			t.Errorf("got %q, want %q", logs, want)
		}
	})
}

// TestNewFailureHandler_UnknownFormat tests format validation.
func TestNewFailureHandler_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewFailureHandler(Format(-1), &bytes.Buffer{}, nil, log.DefaultVerbosity)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func results(failures []check.Failure, err error) iter.Seq2[check.Failure, error] {
	return func(yield func(check.Failure, error) bool) {
		for _, f := range failures {
			if !yield(f, nil) {
				return
			}
		}
		if err != nil {
			yield(check.Failure{}, err)
		}
	}
}

// TestFailureReporter_Report tests counting, dividers and the fail-fast stop.
func TestFailureReporter_Report(t *testing.T) {
	t.Parallel()

	newReporter := func(t *testing.T, format Format) (*FailureReporter, *bytes.Buffer, *bytes.Buffer) {
		t.Helper()
		var out, logs bytes.Buffer
		logger := log.NewLogger(&logs, log.DefaultVerbosity)
		h, err := NewFailureHandler(format, &out, logger, log.DefaultVerbosity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return NewFailureReporter(h, log.NewPrinter(&out, log.DefaultVerbosity), logger), &out, &logs
	}

	t.Run("counts every failure", func(t *testing.T) {
		t.Parallel()

		r, out, logs := newReporter(t, FormatBrief)
		n, err := r.Report(results([]check.Failure{bufFailure(), bufFailure()}, nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 failures, got %d", n)
		}
		want := "geom.c:(add).buf - unsupported type\ngeom.c:(add).buf - unsupported type\n" + Footer + "\n"
		if out.String() != want {
			t.Errorf("got %q, want %q", out.String(), want)
		}
		if logs.String() != "total failures: 2\ndone checking\n" {
			t.Errorf("unexpected logs %q", logs.String())
		}
	})

	t.Run("divider between failures", func(t *testing.T) {
		t.Parallel()

		r, out, _ := newReporter(t, FormatFull)
		if _, err := r.Report(results([]check.Failure{bufFailure(), bufFailure()}, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "*** NO ***\n\nvariable") {
			t.Errorf("expected blank divider between blocks, got %q", out.String())
		}
		if strings.HasPrefix(out.String(), "\n") {
			t.Error("expected no divider before the first failure")
		}
	})

	t.Run("stops at sentinel", func(t *testing.T) {
		t.Parallel()

		r, out, _ := newReporter(t, FormatBrief)
		n, err := r.Report(results([]check.Failure{bufFailure(), check.StopFailure(), bufFailure()}, nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 failure, got %d", n)
		}
		want := "geom.c:(add).buf - unsupported type\nstopping after one failure\n" + Footer + "\n"
		if out.String() != want {
			t.Errorf("got %q, want %q", out.String(), want)
		}
	})

	t.Run("no failures", func(t *testing.T) {
		t.Parallel()

		r, out, logs := newReporter(t, FormatSummary)
		n, err := r.Report(results(nil, nil))
		if err != nil || n != 0 {
			t.Fatalf("got (%d, %v)", n, err)
		}
		if out.String() != Footer+"\n" {
			t.Errorf("got %q", out.String())
		}
		if !strings.Contains(logs.String(), "total failures: 0") {
			t.Errorf("unexpected logs %q", logs.String())
		}
	})

	t.Run("failure without entity is an error", func(t *testing.T) {
		t.Parallel()

		r, out, _ := newReporter(t, FormatBrief)
		n, err := r.Report(results([]check.Failure{{Message: "no entity"}, bufFailure()}, nil))
		if !errors.Is(err, check.ErrMissingEntity) {
			t.Fatalf("expected ErrMissingEntity, got %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 failures, got %d", n)
		}
		if strings.Contains(out.String(), "stopping after one failure") {
			t.Errorf("expected no fail-fast notice, got %q", out.String())
		}
	})

	t.Run("check error propagates unchanged", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		r, _, _ := newReporter(t, FormatBrief)
		n, err := r.Report(results([]check.Failure{bufFailure()}, boom))
		if !errors.Is(err, boom) {
			t.Errorf("expected the original error, got %v", err)
		}
		if n != 1 {
			t.Errorf("expected 1 failure before the error, got %d", n)
		}
	})
}
