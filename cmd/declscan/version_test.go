package main

import (
	"strings"
	"testing"
)

func TestReadBuildInfo(t *testing.T) {
	t.Parallel()

	info := readBuildInfo()
	if info.Version == "" {
		t.Error("expected a version, got empty string")
	}
	if info.Commit != unknownValue && len(info.Commit) > shortHashLen {
		t.Errorf("expected a short commit hash, got %q", info.Commit)
	}
	if info.Date == "" {
		t.Error("expected a date or placeholder, got empty string")
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints commit and date", func(t *testing.T) {
		t.Parallel()

		code, stdout, _ := execute(t, "version")
		if code != 0 {
			t.Fatalf("expected exit code 0, got %d", code)
		}
		if !strings.HasPrefix(stdout, "declscan ") {
			t.Errorf("unexpected first line in %q", stdout)
		}
		for _, want := range []string{"  commit: ", "  built:  "} {
			if !strings.Contains(stdout, want) {
				t.Errorf("expected %q in %q", want, stdout)
			}
		}
	})

	t.Run("short prints the version only", func(t *testing.T) {
		t.Parallel()

		_, stdout, _ := execute(t, "version", "--short")
		if stdout != getVersion()+"\n" {
			t.Errorf("got %q, want %q", stdout, getVersion()+"\n")
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		if code, _, _ := execute(t, "version", "extra"); code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
	})
}
