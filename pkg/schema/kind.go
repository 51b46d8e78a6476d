package schema

import (
	"cmp"
)

// ObjectKind is the closed set of schema object kinds a statement can define.
// The values are the labels used in generated comments and the sort key for
// script output.
type ObjectKind string

const (
	KindTable      ObjectKind = "TABLE"
	KindFunction   ObjectKind = "FUNCTION"
	KindIndex      ObjectKind = "INDEX"
	KindView       ObjectKind = "VIEW"
	KindSequence   ObjectKind = "SEQUENCE"
	KindConstraint ObjectKind = "CONSTRAINT"
	KindAlterTable ObjectKind = "ALTER TABLE"
	KindUnknown    ObjectKind = "UNKNOWN"
)

// Droppable reports whether a removed object of this kind can be dropped with a
// generated DROP ... IF EXISTS statement.
func (k ObjectKind) Droppable() bool {
	switch k {
	case KindTable, KindFunction, KindIndex, KindView, KindSequence:
		return true
	default:
		return false
	}
}

// Replaceable reports whether a modified object of this kind is migrated by
// dropping it and creating the new definition.
func (k ObjectKind) Replaceable() bool {
	switch k {
	case KindFunction, KindView, KindIndex:
		return true
	default:
		return false
	}
}

// ObjectIdentifier is the key of an object within a Snapshot. For KindUnknown
// the name is the full normalized statement.
type ObjectIdentifier struct {
	Kind ObjectKind
	Name string
}

func (id ObjectIdentifier) String() string {
	return string(id.Kind) + " " + id.Name
}

// Compare orders identifiers by kind label, then name.
func (id ObjectIdentifier) Compare(other ObjectIdentifier) int {
	return cmp.Or(
		cmp.Compare(id.Kind, other.Kind),
		cmp.Compare(id.Name, other.Name),
	)
}
