package schema

import (
	"github.com/pseudomuto/dumpdiff/pkg/parser"
)

type matcher struct {
	kind  ObjectKind
	match func(string) (parser.Shape, bool)
}

// matchers are tried in order and the first match wins. Shapes overlap (every
// ADD CONSTRAINT statement is also an ALTER TABLE statement), so the order is
// significant.
var matchers = []matcher{
	{kind: KindFunction, match: shapeOf(parser.MatchFunction)},
	{kind: KindTable, match: shapeOf(parser.MatchTable)},
	{kind: KindIndex, match: shapeOf(parser.MatchIndex)},
	{kind: KindView, match: shapeOf(parser.MatchView)},
	{kind: KindSequence, match: shapeOf(parser.MatchSequence)},
	{kind: KindConstraint, match: shapeOf(parser.MatchConstraint)},
	{kind: KindAlterTable, match: shapeOf(parser.MatchAlterTable)},
}

func shapeOf[T parser.Shape](fn func(string) (T, bool)) func(string) (parser.Shape, bool) {
	return func(stmt string) (parser.Shape, bool) {
		shape, ok := fn(stmt)
		if !ok {
			return nil, false
		}

		return shape, true
	}
}

// Classify identifies the object a statement defines. Keywords are matched
// case-insensitively and the captured name keeps its source casing. The second
// return value is false when no shape matches; callers decide whether that
// means KindUnknown.
//
// Example:
//
//	id, ok := schema.Classify("create unique index users_email_idx on public.users (email)")
//	// ok == true
//	// id == schema.ObjectIdentifier{Kind: schema.KindIndex, Name: "users_email_idx"}
func Classify(stmt string) (ObjectIdentifier, bool) {
	norm, err := parser.Normalize(stmt)
	if err != nil {
		return ObjectIdentifier{}, false
	}

	return classifyNormalized(norm)
}

func classifyNormalized(stmt string) (ObjectIdentifier, bool) {
	for _, m := range matchers {
		if shape, ok := m.match(stmt); ok {
			return ObjectIdentifier{Kind: m.kind, Name: shape.ObjectName()}, true
		}
	}

	return ObjectIdentifier{}, false
}

// constraintOwner returns the table an ADD CONSTRAINT statement targets, or an
// empty string when stmt is not of that shape.
func constraintOwner(stmt string) string {
	shape, ok := parser.MatchConstraint(stmt)
	if !ok {
		return ""
	}

	return shape.OwnerName()
}
