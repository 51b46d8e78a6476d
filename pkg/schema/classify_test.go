package schema_test

import (
	"testing"

	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		stmt     string
		expected schema.ObjectIdentifier
	}{
		{
			name:     "function",
			stmt:     "CREATE FUNCTION public.add_numbers(a integer, b integer) RETURNS integer LANGUAGE sql AS $$ SELECT a + b; $$",
			expected: schema.ObjectIdentifier{Kind: schema.KindFunction, Name: "public.add_numbers"},
		},
		{
			name:     "function or replace",
			stmt:     "CREATE OR REPLACE FUNCTION public.touch () RETURNS trigger LANGUAGE plpgsql AS $$ BEGIN RETURN NEW; END; $$",
			expected: schema.ObjectIdentifier{Kind: schema.KindFunction, Name: "public.touch"},
		},
		{
			name:     "table",
			stmt:     "CREATE TABLE public.users ( id integer NOT NULL )",
			expected: schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.users"},
		},
		{
			name:     "table if not exists",
			stmt:     "CREATE TABLE IF NOT EXISTS public.users (id integer)",
			expected: schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.users"},
		},
		{
			name:     "table with quoted names keeps quotes",
			stmt:     `CREATE TABLE "Sales"."Orders" (id integer)`,
			expected: schema.ObjectIdentifier{Kind: schema.KindTable, Name: `"Sales"."Orders"`},
		},
		{
			name:     "lower case keywords keep name casing",
			stmt:     "create table Public.Users (id integer)",
			expected: schema.ObjectIdentifier{Kind: schema.KindTable, Name: "Public.Users"},
		},
		{
			name:     "index",
			stmt:     "CREATE INDEX users_email_idx ON public.users USING btree (email)",
			expected: schema.ObjectIdentifier{Kind: schema.KindIndex, Name: "users_email_idx"},
		},
		{
			name:     "unique index",
			stmt:     "CREATE UNIQUE INDEX users_email_key ON public.users (email)",
			expected: schema.ObjectIdentifier{Kind: schema.KindIndex, Name: "users_email_key"},
		},
		{
			name:     "index concurrently if not exists",
			stmt:     "CREATE INDEX CONCURRENTLY IF NOT EXISTS users_name_idx ON public.users (name)",
			expected: schema.ObjectIdentifier{Kind: schema.KindIndex, Name: "users_name_idx"},
		},
		{
			name:     "view",
			stmt:     "CREATE VIEW public.active_users AS SELECT id FROM public.users WHERE active",
			expected: schema.ObjectIdentifier{Kind: schema.KindView, Name: "public.active_users"},
		},
		{
			name:     "view or replace",
			stmt:     "create or replace view public.active_users as select 1",
			expected: schema.ObjectIdentifier{Kind: schema.KindView, Name: "public.active_users"},
		},
		{
			name:     "sequence",
			stmt:     "CREATE SEQUENCE public.users_id_seq AS integer START WITH 1",
			expected: schema.ObjectIdentifier{Kind: schema.KindSequence, Name: "public.users_id_seq"},
		},
		{
			name:     "sequence at end of statement",
			stmt:     "CREATE SEQUENCE public.users_id_seq",
			expected: schema.ObjectIdentifier{Kind: schema.KindSequence, Name: "public.users_id_seq"},
		},
		{
			name:     "constraint wins over alter table",
			stmt:     "ALTER TABLE ONLY public.posts ADD CONSTRAINT posts_user_id_fkey FOREIGN KEY (user_id) REFERENCES public.users(id)",
			expected: schema.ObjectIdentifier{Kind: schema.KindConstraint, Name: "posts_user_id_fkey"},
		},
		{
			name:     "constraint without only",
			stmt:     "alter table public.users add constraint users_pkey primary key (id)",
			expected: schema.ObjectIdentifier{Kind: schema.KindConstraint, Name: "users_pkey"},
		},
		{
			name:     "alter table",
			stmt:     "ALTER TABLE public.users OWNER TO postgres",
			expected: schema.ObjectIdentifier{Kind: schema.KindAlterTable, Name: "public.users"},
		},
		{
			name:     "alter table only",
			stmt:     "ALTER TABLE ONLY public.users REPLICA IDENTITY FULL",
			expected: schema.ObjectIdentifier{Kind: schema.KindAlterTable, Name: "public.users"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := schema.Classify(tt.stmt)
			require.True(t, ok)
			require.Equal(t, tt.expected, id)
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	stmts := []string{
		"",
		"COMMENT ON TABLE public.users IS 'people'",
		"INSERT INTO public.users VALUES (1)",
		"GRANT SELECT ON public.users TO reader",
		"CREATE EXTENSION IF NOT EXISTS pgcrypto",
		"DROP TABLE public.users",
	}

	for _, stmt := range stmts {
		_, ok := schema.Classify(stmt)
		require.False(t, ok, stmt)
	}
}

func TestObjectIdentifier_Compare(t *testing.T) {
	a := schema.ObjectIdentifier{Kind: schema.KindAlterTable, Name: "public.z"}
	b := schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.a"}
	c := schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.b"}

	require.Negative(t, a.Compare(b))
	require.Negative(t, b.Compare(c))
	require.Positive(t, c.Compare(a))
	require.Zero(t, c.Compare(c))
	require.Equal(t, "TABLE public.a", b.String())
}

func TestObjectKind(t *testing.T) {
	require.True(t, schema.KindSequence.Droppable())
	require.False(t, schema.KindConstraint.Droppable())
	require.False(t, schema.KindUnknown.Droppable())

	require.True(t, schema.KindIndex.Replaceable())
	require.False(t, schema.KindTable.Replaceable())
	require.False(t, schema.KindAlterTable.Replaceable())
}
