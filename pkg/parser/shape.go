package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

type (
	// QualifiedName is a possibly schema-qualified identifier such as
	// public.users or "Sales"."Orders". Parts keep their source casing and quotes.
	QualifiedName struct {
		Parts []string `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
	}

	// Shape is the structured capture of a recognised statement prefix.
	Shape interface {
		// ObjectName returns the name of the object the statement defines.
		ObjectName() string
	}

	// FunctionShape matches CREATE [OR REPLACE] FUNCTION name (
	FunctionShape struct {
		Create    string        `parser:"'CREATE'"`
		OrReplace bool          `parser:"@('OR' 'REPLACE')?"`
		Function  string        `parser:"'FUNCTION'"`
		Name      QualifiedName `parser:"@@"`
		Open      string        `parser:"'('"`
	}

	// TableShape matches CREATE TABLE [IF NOT EXISTS] name (
	TableShape struct {
		Create      string        `parser:"'CREATE'"`
		Table       string        `parser:"'TABLE'"`
		IfNotExists bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        QualifiedName `parser:"@@"`
		Open        string        `parser:"'('"`
	}

	// TableNameShape matches CREATE TABLE [IF NOT EXISTS] name, with or without
	// a column list after it.
	TableNameShape struct {
		Create      string        `parser:"'CREATE'"`
		Table       string        `parser:"'TABLE'"`
		IfNotExists bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        QualifiedName `parser:"@@"`
	}

	// IndexShape matches CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS] name ON
	IndexShape struct {
		Create       string        `parser:"'CREATE'"`
		Unique       bool          `parser:"@'UNIQUE'?"`
		Index        string        `parser:"'INDEX'"`
		Concurrently bool          `parser:"@'CONCURRENTLY'?"`
		IfNotExists  bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name         QualifiedName `parser:"@@"`
		On           string        `parser:"'ON'"`
	}

	// ViewShape matches CREATE [OR REPLACE] VIEW name AS
	ViewShape struct {
		Create    string        `parser:"'CREATE'"`
		OrReplace bool          `parser:"@('OR' 'REPLACE')?"`
		View      string        `parser:"'VIEW'"`
		Name      QualifiedName `parser:"@@"`
		As        string        `parser:"'AS'"`
	}

	// SequenceShape matches CREATE SEQUENCE [IF NOT EXISTS] name
	SequenceShape struct {
		Create      string        `parser:"'CREATE'"`
		Sequence    string        `parser:"'SEQUENCE'"`
		IfNotExists bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        QualifiedName `parser:"@@"`
	}

	// ConstraintShape matches ALTER TABLE [ONLY] [IF EXISTS] table ADD CONSTRAINT name
	ConstraintShape struct {
		Alter    string        `parser:"'ALTER'"`
		Table    string        `parser:"'TABLE'"`
		Only     bool          `parser:"@'ONLY'?"`
		IfExists bool          `parser:"@('IF' 'EXISTS')?"`
		Owner    QualifiedName `parser:"@@"`
		Add      string        `parser:"'ADD' 'CONSTRAINT'"`
		Name     QualifiedName `parser:"@@"`
	}

	// AlterTableShape matches ALTER TABLE [ONLY] [IF EXISTS] name
	AlterTableShape struct {
		Alter    string        `parser:"'ALTER'"`
		Table    string        `parser:"'TABLE'"`
		Only     bool          `parser:"@'ONLY'?"`
		IfExists bool          `parser:"@('IF' 'EXISTS')?"`
		Name     QualifiedName `parser:"@@"`
	}
)

var (
	functionParser   = buildShape[FunctionShape]()
	tableParser      = buildShape[TableShape]()
	tableNameParser  = buildShape[TableNameShape]()
	indexParser      = buildShape[IndexShape]()
	viewParser       = buildShape[ViewShape]()
	sequenceParser   = buildShape[SequenceShape]()
	constraintParser = buildShape[ConstraintShape]()
	alterTableParser = buildShape[AlterTableShape]()
)

func buildShape[T any]() *participle.Parser[T] {
	return participle.MustBuild[T](
		participle.Lexer(dumpLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.UseLookahead(4),
	)
}

// String joins the name parts with dots.
func (n QualifiedName) String() string {
	return strings.Join(n.Parts, ".")
}

func (s *FunctionShape) ObjectName() string   { return s.Name.String() }
func (s *TableShape) ObjectName() string      { return s.Name.String() }
func (s *TableNameShape) ObjectName() string  { return s.Name.String() }
func (s *IndexShape) ObjectName() string      { return s.Name.String() }
func (s *ViewShape) ObjectName() string       { return s.Name.String() }
func (s *SequenceShape) ObjectName() string   { return s.Name.String() }
func (s *ConstraintShape) ObjectName() string { return s.Name.String() }
func (s *AlterTableShape) ObjectName() string { return s.Name.String() }

// OwnerName returns the table the constraint is added to.
func (s *ConstraintShape) OwnerName() string { return s.Owner.String() }

// MatchFunction reports whether stmt starts with a function definition.
func MatchFunction(stmt string) (*FunctionShape, bool) { return matchShape(functionParser, stmt) }

// MatchTable reports whether stmt starts with a table definition.
func MatchTable(stmt string) (*TableShape, bool) { return matchShape(tableParser, stmt) }

// MatchTableName reports whether stmt starts with CREATE TABLE and a name. It
// accepts statements MatchTable rejects, such as a table with no column list.
func MatchTableName(stmt string) (*TableNameShape, bool) { return matchShape(tableNameParser, stmt) }

// MatchIndex reports whether stmt starts with an index definition.
func MatchIndex(stmt string) (*IndexShape, bool) { return matchShape(indexParser, stmt) }

// MatchView reports whether stmt starts with a view definition.
func MatchView(stmt string) (*ViewShape, bool) { return matchShape(viewParser, stmt) }

// MatchSequence reports whether stmt starts with a sequence definition.
func MatchSequence(stmt string) (*SequenceShape, bool) { return matchShape(sequenceParser, stmt) }

// MatchConstraint reports whether stmt adds a named constraint to a table.
func MatchConstraint(stmt string) (*ConstraintShape, bool) {
	return matchShape(constraintParser, stmt)
}

// MatchAlterTable reports whether stmt is any ALTER TABLE statement.
func MatchAlterTable(stmt string) (*AlterTableShape, bool) {
	return matchShape(alterTableParser, stmt)
}

// matchShape parses the leading tokens of stmt. Keywords must already be
// upper-cased (see Normalize); tokens after the shape are ignored.
func matchShape[T any](p *participle.Parser[T], stmt string) (*T, bool) {
	shape, err := p.ParseString("", stmt, participle.AllowTrailing(true))
	if err != nil {
		return nil, false
	}

	return shape, true
}
