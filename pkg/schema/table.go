package schema

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/parser"
	"github.com/pseudomuto/dumpdiff/pkg/utils"
)

// ErrMalformedTable is returned when a CREATE TABLE body cannot be decomposed.
var ErrMalformedTable = errors.New("malformed table definition")

type (
	// ColumnDefinition holds the attributes compared between table versions.
	ColumnDefinition struct {
		Type    string
		NotNull bool
		Default *string
	}

	// TableDefinition is a decomposed CREATE TABLE statement. ColumnNames keeps
	// the declaration order of Columns.
	TableDefinition struct {
		Name        string
		ColumnNames []string
		Columns     map[string]ColumnDefinition
		Constraints map[string]string
	}
)

// Clause renders the column definition as used after the column name in an
// ADD COLUMN statement: type, then NOT NULL, then DEFAULT.
func (c ColumnDefinition) Clause() string {
	var sb strings.Builder
	sb.WriteString(c.Type)

	if c.NotNull {
		sb.WriteString(" NOT NULL")
	}

	if c.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(*c.Default)
	}

	return sb.String()
}

// Decompose parses a CREATE TABLE statement into its columns and constraints.
//
// The body between the first "(" and the last ")" is split on top-level commas.
// Commas and parentheses inside quoted literals or identifiers don't count, and
// unbalanced parentheses or quotes yield ErrMalformedTable. Parts starting with
// CONSTRAINT, PRIMARY KEY, FOREIGN KEY, UNIQUE, CHECK or EXCLUDE are
// constraints; everything else is a column.
//
// Unnamed constraints get the name <table>_<n> where n is the number of
// constraints seen so far. These names shift when constraints are added or
// removed ahead of them.
//
// Example:
//
//	tbl, _ := schema.Decompose("CREATE TABLE public.users (id integer NOT NULL, email text DEFAULT '', PRIMARY KEY (id))")
//	// tbl.ColumnNames == []string{"id", "email"}
//	// tbl.Constraints == map[string]string{"public.users_0": "PRIMARY KEY (id)"}
func Decompose(stmt string) (*TableDefinition, error) {
	norm, err := parser.Normalize(stmt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to normalize table statement")
	}

	shape, ok := parser.MatchTableName(norm)
	if !ok {
		return nil, errors.Wrap(ErrMalformedTable, "not a CREATE TABLE statement")
	}

	tbl := &TableDefinition{
		Name:        shape.ObjectName(),
		ColumnNames: make([]string, 0),
		Columns:     make(map[string]ColumnDefinition),
		Constraints: make(map[string]string),
	}

	open := strings.IndexByte(norm, '(')
	end := strings.LastIndexByte(norm, ')')
	if open < 0 || end < open {
		return tbl, nil
	}

	parts, err := splitTopLevel(norm[open+1 : end])
	if err != nil {
		return nil, errors.Wrapf(err, "table %s", tbl.Name)
	}

	for _, part := range parts {
		words := strings.Fields(part)
		if len(words) == 0 {
			continue
		}

		if isConstraint(words) {
			tbl.addConstraint(words)
			continue
		}

		tbl.addColumn(words)
	}

	return tbl, nil
}

// Column returns the definition of a column by name.
func (t *TableDefinition) Column(name string) (ColumnDefinition, bool) {
	col, ok := t.Columns[name]
	return col, ok
}

func (t *TableDefinition) addConstraint(words []string) {
	if strings.EqualFold(words[0], "CONSTRAINT") && len(words) > 1 {
		t.Constraints[words[1]] = strings.Join(words[2:], " ")
		return
	}

	name := fmt.Sprintf("%s_%d", t.Name, len(t.Constraints))
	t.Constraints[name] = strings.Join(words, " ")
}

func (t *TableDefinition) addColumn(words []string) {
	name := words[0]
	col := ColumnDefinition{}

	typeWords := make([]string, 0, len(words))
	for _, w := range words[1:] {
		if isWord(w, "NOT") || isWord(w, "NULL") || isWord(w, "DEFAULT") {
			break
		}
		typeWords = append(typeWords, w)
	}
	col.Type = strings.Join(typeWords, " ")

	hasNot, hasNull := false, false
	defaultAt := -1
	for i, w := range words[1:] {
		switch {
		case isWord(w, "NOT"):
			hasNot = true
		case isWord(w, "NULL"):
			hasNull = true
		case isWord(w, "DEFAULT") && defaultAt < 0:
			defaultAt = i + 1
		}
	}
	col.NotNull = hasNot && hasNull

	if defaultAt >= 0 {
		rest := words[defaultAt+1:]
		if n := len(rest); n >= 2 && isWord(rest[n-2], "NOT") && isWord(rest[n-1], "NULL") {
			rest = rest[:n-2]
		}
		col.Default = utils.Ptr(strings.Join(rest, " "))
	}

	if _, exists := t.Columns[name]; !exists {
		t.ColumnNames = append(t.ColumnNames, name)
	}
	t.Columns[name] = col
}

// isConstraint reports whether a table body part declares a constraint. Only
// the leading identifier characters of each word count, so UNIQUE(email) is a
// constraint and unique_code is a column.
func isConstraint(words []string) bool {
	switch leadingWord(words[0]) {
	case "CONSTRAINT", "UNIQUE", "CHECK", "EXCLUDE":
		return true
	case "PRIMARY", "FOREIGN":
		return len(words) > 1 && leadingWord(words[1]) == "KEY"
	default:
		return false
	}
}

func leadingWord(w string) string {
	end := strings.IndexFunc(w, func(r rune) bool {
		return r != '_' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9')
	})
	if end >= 0 {
		w = w[:end]
	}

	return strings.ToUpper(w)
}

func isWord(w, keyword string) bool {
	return strings.EqualFold(w, keyword)
}

// splitTopLevel splits a table body on commas outside parentheses, single-quoted
// literals and double-quoted identifiers. Parts are trimmed; empty parts are
// kept out of the result.
func splitTopLevel(body string) ([]string, error) {
	var (
		parts []string
		depth int
		quote rune
		start int
	)

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	for i, r := range body {
		if quote != 0 {
			if r == quote {
				quote = 0
			}
			continue
		}

		switch r {
		case '\'', '"':
			quote = r
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.Wrap(ErrMalformedTable, "unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				add(body[start:i])
				start = i + 1
			}
		}
	}

	if quote != 0 {
		return nil, errors.Wrap(ErrMalformedTable, "unterminated quote")
	}

	if depth != 0 {
		return nil, errors.Wrap(ErrMalformedTable, "unbalanced parentheses")
	}

	add(body[start:])
	return parts, nil
}
