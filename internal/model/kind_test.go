package model

import (
	"errors"
	"testing"
)

// TestKindString tests the String method of Kind.
func TestKindString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind     Kind
		expected string
	}{
		{KindTypedef, "typedef"},
		{KindStruct, "struct"},
		{KindUnion, "union"},
		{KindEnum, "enum"},
		{KindFunction, "function"},
		{KindVariable, "variable"},
		{KindStatement, "statement"},
		{Kind(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.kind.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.kind.String(), tc.expected)
			}
		})
	}
}

// TestParseKind tests round-tripping kind values.
func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, expected %v", kind, got, kind)
		}
	}

	t.Run("unknown value", func(t *testing.T) {
		t.Parallel()
		_, err := ParseKind("typedefs")
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}

// TestKindIsTypeDecl tests which kinds are type declarations.
func TestKindIsTypeDecl(t *testing.T) {
	t.Parallel()

	expected := map[Kind]bool{
		KindTypedef:   true,
		KindStruct:    true,
		KindUnion:     true,
		KindEnum:      true,
		KindFunction:  false,
		KindVariable:  false,
		KindStatement: false,
	}
	for kind, want := range expected {
		if got := kind.IsTypeDecl(); got != want {
			t.Errorf("%s.IsTypeDecl() = %t, expected %t", kind, got, want)
		}
	}
}
