package dialect

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/utils"
)

// ErrUnknownEdit is returned when a template set has no template for an edit kind.
var ErrUnknownEdit = errors.New("no template for edit")

type (
	// Dialect renders edits and object drops for one target database.
	Dialect interface {
		// Name returns the selector the dialect is registered under.
		Name() string
		// Render returns the statement for a single table edit.
		Render(e Edit) (string, error)
		// DropObject returns a DROP ... IF EXISTS statement for an object kind
		// such as "TABLE" or "INDEX".
		DropObject(kind, name string) string
	}

	// TemplateSet maps each edit kind to a statement template. Templates use
	// {table}, {column}, {old_column}, {new_column}, {definition}, {type},
	// {default} and {constraint} placeholders.
	TemplateSet map[EditKind]string

	templateDialect struct {
		name      string
		templates TemplateSet
	}
)

// PG15 is the PostgreSQL 15 template set and the fallback for every other
// selector.
var PG15 = TemplateSet{
	EditAddColumn:       "ALTER TABLE {table} ADD COLUMN {column} {definition};",
	EditDropColumn:      "ALTER TABLE {table} DROP COLUMN {column};",
	EditRenameColumn:    "ALTER TABLE {table} RENAME COLUMN {old_column} TO {new_column};",
	EditAlterColumnType: "ALTER TABLE {table} ALTER COLUMN {column} TYPE {type};",
	EditSetDefault:      "ALTER TABLE {table} ALTER COLUMN {column} SET DEFAULT {default};",
	EditDropDefault:     "ALTER TABLE {table} ALTER COLUMN {column} DROP DEFAULT;",
	EditSetNotNull:      "ALTER TABLE {table} ALTER COLUMN {column} SET NOT NULL;",
	EditDropNotNull:     "ALTER TABLE {table} ALTER COLUMN {column} DROP NOT NULL;",
	EditAddConstraint:   "ALTER TABLE {table} ADD CONSTRAINT {constraint} {definition};",
	EditDropConstraint:  "ALTER TABLE {table} DROP CONSTRAINT {constraint};",
}

// New returns a Dialect that renders edits from templates.
func New(name string, templates TemplateSet) Dialect {
	return &templateDialect{name: name, templates: templates}
}

// Render substitutes the edit's fields into its template. Substitution is a
// single pass, so placeholder-looking text inside values is left alone.
//
// Example:
//
//	sql, _ := dialect.PG15.Render(dialect.SetNotNull{TableName: "public.users", Column: "email"})
//	// sql == "ALTER TABLE public.users ALTER COLUMN email SET NOT NULL;"
func (t TemplateSet) Render(e Edit) (string, error) {
	tmpl, ok := t[e.Kind()]
	if !ok {
		return "", errors.Wrapf(ErrUnknownEdit, "%s", e.Kind())
	}

	values := e.placeholders()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(values)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}

	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

func (d *templateDialect) Name() string { return d.name }

func (d *templateDialect) Render(e Edit) (string, error) {
	return d.templates.Render(e)
}

func (d *templateDialect) DropObject(kind, name string) string {
	return utils.NewSQLBuilder().Drop(kind).IfExists().Name(name).String()
}
