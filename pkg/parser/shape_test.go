package parser_test

import (
	"testing"

	. "github.com/pseudomuto/dumpdiff/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestMatchShapes(t *testing.T) {
	var (
		function   = func(s string) (Shape, bool) { return MatchFunction(s) }
		table      = func(s string) (Shape, bool) { return MatchTable(s) }
		tableName  = func(s string) (Shape, bool) { return MatchTableName(s) }
		index      = func(s string) (Shape, bool) { return MatchIndex(s) }
		view       = func(s string) (Shape, bool) { return MatchView(s) }
		sequence   = func(s string) (Shape, bool) { return MatchSequence(s) }
		constraint = func(s string) (Shape, bool) { return MatchConstraint(s) }
		alterTable = func(s string) (Shape, bool) { return MatchAlterTable(s) }
	)

	tests := []struct {
		name     string
		match    func(string) (Shape, bool)
		stmt     string
		ok       bool
		expected string
	}{
		{
			name:     "function",
			match:    function,
			stmt:     "CREATE FUNCTION public.add_numbers(a integer, b integer) RETURNS integer",
			ok:       true,
			expected: "public.add_numbers",
		},
		{
			name:     "function or replace with quoted name",
			match:    function,
			stmt:     `CREATE OR REPLACE FUNCTION "Sales"."Total"() RETURNS numeric`,
			ok:       true,
			expected: `"Sales"."Total"`,
		},
		{
			name:  "function needs upper-case keywords",
			match: function,
			stmt:  "create function public.f() returns int",
		},
		{
			name:     "table",
			match:    table,
			stmt:     "CREATE TABLE public.users ( id integer )",
			ok:       true,
			expected: "public.users",
		},
		{
			name:     "table if not exists",
			match:    table,
			stmt:     "CREATE TABLE IF NOT EXISTS users (id integer)",
			ok:       true,
			expected: "users",
		},
		{
			name:  "table as select",
			match: table,
			stmt:  "CREATE TABLE public.copy AS SELECT 1",
		},
		{
			name:     "table name without column list",
			match:    tableName,
			stmt:     "CREATE TABLE public.copy",
			ok:       true,
			expected: "public.copy",
		},
		{
			name:     "table name with column list",
			match:    tableName,
			stmt:     "CREATE TABLE IF NOT EXISTS public.users (id integer)",
			ok:       true,
			expected: "public.users",
		},
		{
			name:  "table name needs a table",
			match: tableName,
			stmt:  "CREATE VIEW public.v AS SELECT 1",
		},
		{
			name:     "unique index",
			match:    index,
			stmt:     "CREATE UNIQUE INDEX CONCURRENTLY users_email_key ON public.users USING btree (email)",
			ok:       true,
			expected: "users_email_key",
		},
		{
			name:  "index is not a table",
			match: table,
			stmt:  "CREATE INDEX users_email_idx ON public.users (email)",
		},
		{
			name:     "view",
			match:    view,
			stmt:     "CREATE OR REPLACE VIEW public.active_users AS SELECT id FROM public.users",
			ok:       true,
			expected: "public.active_users",
		},
		{
			name:     "sequence",
			match:    sequence,
			stmt:     "CREATE SEQUENCE public.users_id_seq START WITH 1 INCREMENT BY 1",
			ok:       true,
			expected: "public.users_id_seq",
		},
		{
			name:     "constraint",
			match:    constraint,
			stmt:     "ALTER TABLE ONLY public.posts ADD CONSTRAINT posts_pkey PRIMARY KEY (id)",
			ok:       true,
			expected: "posts_pkey",
		},
		{
			name:  "add column is not a constraint",
			match: constraint,
			stmt:  "ALTER TABLE public.posts ADD COLUMN title text",
		},
		{
			name:     "alter table",
			match:    alterTable,
			stmt:     "ALTER TABLE ONLY public.posts ALTER COLUMN id SET DEFAULT nextval('public.posts_id_seq'::regclass)",
			ok:       true,
			expected: "public.posts",
		},
		{
			name:  "alter sequence is not alter table",
			match: alterTable,
			stmt:  "ALTER SEQUENCE public.posts_id_seq OWNED BY public.posts.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, ok := tt.match(tt.stmt)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, shape.ObjectName())
			}
		})
	}
}

func TestMatchConstraint_Owner(t *testing.T) {
	shape, ok := MatchConstraint(`ALTER TABLE IF EXISTS "Sales".orders ADD CONSTRAINT orders_total_check CHECK (total > 0)`)
	require.True(t, ok)
	require.True(t, shape.IfExists)
	require.False(t, shape.Only)
	require.Equal(t, `"Sales".orders`, shape.OwnerName())
	require.Equal(t, "orders_total_check", shape.ObjectName())
}

func TestQualifiedName(t *testing.T) {
	require.Equal(t, "public.users", QualifiedName{Parts: []string{"public", "users"}}.String())
	require.Equal(t, "users", QualifiedName{Parts: []string{"users"}}.String())
}
