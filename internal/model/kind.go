package model

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a string does not name an entity kind.
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind identifies what sort of C construct an analyzed entity is.
// The set is closed; the zero value is KindTypedef.
type Kind int

const (
	// KindTypedef is a typedef declaration.
	KindTypedef Kind = iota
	// KindStruct is a struct declaration.
	KindStruct
	// KindUnion is a union declaration.
	KindUnion
	// KindEnum is an enum declaration.
	KindEnum
	// KindFunction is a function declaration or definition.
	KindFunction
	// KindVariable is a global, static or function-local variable.
	KindVariable
	// KindStatement is a statement found inside a function body.
	KindStatement
)

// kindNames holds the lowercase values used in data files and reports.
var kindNames = [...]string{
	KindTypedef:   "typedef",
	KindStruct:    "struct",
	KindUnion:     "union",
	KindEnum:      "enum",
	KindFunction:  "function",
	KindVariable:  "variable",
	KindStatement: "statement",
}

// Kinds returns every kind in the fixed report order.
func Kinds() []Kind {
	return []Kind{
		KindTypedef,
		KindStruct,
		KindUnion,
		KindEnum,
		KindFunction,
		KindVariable,
		KindStatement,
	}
}

// String returns the lowercase value of the kind, e.g. "typedef".
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kindNames[k]
}

// IsTypeDecl reports whether the kind declares a type.
func (k Kind) IsTypeDecl() bool {
	switch k {
	case KindTypedef, KindStruct, KindUnion, KindEnum:
		return true
	default:
		return false
	}
}

func (k Kind) valid() bool {
	return k >= KindTypedef && k <= KindStatement
}

// ParseKind converts a kind value such as "struct" back into a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
