package dialect_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestTemplateSet_Render(t *testing.T) {
	const table = "public.users"

	tests := []struct {
		name     string
		edit     dialect.Edit
		expected string
	}{
		{
			name:     "add column",
			edit:     dialect.AddColumn{TableName: table, Column: "last_login", Definition: "timestamp NOT NULL DEFAULT now()"},
			expected: "ALTER TABLE public.users ADD COLUMN last_login timestamp NOT NULL DEFAULT now();",
		},
		{
			name:     "drop column",
			edit:     dialect.DropColumn{TableName: table, Column: "name"},
			expected: "ALTER TABLE public.users DROP COLUMN name;",
		},
		{
			name:     "rename column",
			edit:     dialect.RenameColumn{TableName: table, OldColumn: "name", NewColumn: "username"},
			expected: "ALTER TABLE public.users RENAME COLUMN name TO username;",
		},
		{
			name:     "alter column type",
			edit:     dialect.AlterColumnType{TableName: table, Column: "id", Type: "bigint"},
			expected: "ALTER TABLE public.users ALTER COLUMN id TYPE bigint;",
		},
		{
			name:     "set default",
			edit:     dialect.SetDefault{TableName: table, Column: "active", Default: "true"},
			expected: "ALTER TABLE public.users ALTER COLUMN active SET DEFAULT true;",
		},
		{
			name:     "drop default",
			edit:     dialect.DropDefault{TableName: table, Column: "last_login"},
			expected: "ALTER TABLE public.users ALTER COLUMN last_login DROP DEFAULT;",
		},
		{
			name:     "set not null",
			edit:     dialect.SetNotNull{TableName: table, Column: "email"},
			expected: "ALTER TABLE public.users ALTER COLUMN email SET NOT NULL;",
		},
		{
			name:     "drop not null",
			edit:     dialect.DropNotNull{TableName: table, Column: "email"},
			expected: "ALTER TABLE public.users ALTER COLUMN email DROP NOT NULL;",
		},
		{
			name:     "add constraint",
			edit:     dialect.AddConstraint{TableName: table, Constraint: "users_pkey", Definition: "PRIMARY KEY (id)"},
			expected: "ALTER TABLE public.users ADD CONSTRAINT users_pkey PRIMARY KEY (id);",
		},
		{
			name:     "drop constraint",
			edit:     dialect.DropConstraint{TableName: table, Constraint: "users_pkey"},
			expected: "ALTER TABLE public.users DROP CONSTRAINT users_pkey;",
		},
		{
			name:     "placeholder text inside values is not substituted",
			edit:     dialect.SetDefault{TableName: table, Column: "tpl", Default: "'{table}'"},
			expected: "ALTER TABLE public.users ALTER COLUMN tpl SET DEFAULT '{table}';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := dialect.PG15.Render(tt.edit)
			require.NoError(t, err)
			require.Equal(t, tt.expected, sql)
			require.Equal(t, table, tt.edit.Table())
		})
	}
}

func TestTemplateSet_RenderUnknownEdit(t *testing.T) {
	set := dialect.TemplateSet{
		dialect.EditDropColumn: "ALTER TABLE {table} DROP COLUMN {column};",
	}

	_, err := set.Render(dialect.SetNotNull{TableName: "t", Column: "c"})
	require.Error(t, err)
	require.True(t, errors.Is(err, dialect.ErrUnknownEdit))
	require.Contains(t, err.Error(), "set_not_null")
}

func TestDialect_DropObject(t *testing.T) {
	d := dialect.New("pg15", dialect.PG15)

	require.Equal(t, "pg15", d.Name())
	require.Equal(t, "DROP TABLE IF EXISTS public.users;", d.DropObject("TABLE", "public.users"))
	require.Equal(t, "DROP INDEX IF EXISTS users_email_idx;", d.DropObject("INDEX", "users_email_idx"))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		fallback bool
	}{
		{name: "pg15 is defined", selector: "pg15", fallback: false},
		{name: "pg16 degrades", selector: "pg16", fallback: true},
		{name: "gbq degrades", selector: "gbq", fallback: true},
		{name: "sqlite3 degrades", selector: "sqlite3", fallback: true},
		{name: "unrecognized degrades", selector: "oracle", fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, fallback := dialect.Lookup(tt.selector)
			require.Equal(t, tt.fallback, fallback)
			require.Equal(t, dialect.Default, d.Name())
		})
	}
}

func TestKnown(t *testing.T) {
	require.Equal(t, []string{"gbq", "pg15", "pg16", "sqlite3"}, dialect.Names())
	require.True(t, dialect.Known("sqlite3"))
	require.False(t, dialect.Known("oracle"))
	require.False(t, dialect.Known("PG15"))
}
