package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/parser"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	stmts := []string{
		"SET statement_timeout = 0",
		"SELECT pg_catalog.set_config('search_path', '', false)",
		"ALTER SEQUENCE public.users_id_seq OWNED BY public.users.id",
		"create table public.users (id integer not null)",
		"COMMENT ON TABLE public.users IS 'people'",
		"DROP TABLE IF EXISTS public.users",
		"   ",
	}

	snap, err := schema.Build(stmts, schema.BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())

	require.Equal(t, []schema.ObjectIdentifier{
		{Kind: schema.KindTable, Name: "public.users"},
		{Kind: schema.KindUnknown, Name: "COMMENT ON TABLE public.users IS 'people'"},
	}, snap.Identifiers())

	stmt, ok := snap.Get(schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.users"})
	require.True(t, ok)
	require.Equal(t, "CREATE TABLE public.users (id integer NOT NULL)", stmt)

	_, ok = snap.Get(schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.posts"})
	require.False(t, ok)
}

func TestBuild_LastWriteWins(t *testing.T) {
	snap, err := schema.Build([]string{
		"CREATE TABLE public.users (id integer)",
		"CREATE TABLE public.users (id bigint)",
	}, schema.BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len())

	stmt, _ := snap.Get(schema.ObjectIdentifier{Kind: schema.KindTable, Name: "public.users"})
	require.Equal(t, "CREATE TABLE public.users (id bigint)", stmt)
}

func TestBuild_IgnoreOptions(t *testing.T) {
	stmts := []string{
		"SET search_path = ''",
		"CREATE TABLE public.audit_log (id integer)",
	}

	t.Run("empty list ignores nothing", func(t *testing.T) {
		snap, err := schema.Build(stmts, schema.BuildOptions{Ignore: []string{}})
		require.NoError(t, err)
		require.Equal(t, 2, snap.Len())

		_, ok := snap.Get(schema.ObjectIdentifier{Kind: schema.KindUnknown, Name: "SET search_path = ''"})
		require.True(t, ok)
	})

	t.Run("custom substrings", func(t *testing.T) {
		snap, err := schema.Build(stmts, schema.BuildOptions{Ignore: []string{"audit_log"}})
		require.NoError(t, err)
		require.Equal(t, []schema.ObjectIdentifier{
			{Kind: schema.KindUnknown, Name: "SET search_path = ''"},
		}, snap.Identifiers())
	})

	t.Run("substring match is not anchored", func(t *testing.T) {
		snap, err := schema.Build([]string{
			"ALTER TABLE public.users ALTER COLUMN id SET DEFAULT nextval('public.users_id_seq'::regclass)",
		}, schema.BuildOptions{})
		require.NoError(t, err)
		require.Zero(t, snap.Len())
	})
}

func TestBuild_UnknownKeysAreFullText(t *testing.T) {
	snap, err := schema.Build([]string{
		"COMMENT ON TABLE public.users IS 'people'",
		"COMMENT ON TABLE public.users IS 'humans'",
		"COMMENT ON TABLE public.users IS 'people'",
	}, schema.BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte(`
-- users
CREATE TABLE public.users (
    id integer NOT NULL
);

CREATE INDEX users_id_idx ON public.users USING btree (id);
`), 0o644))

	snap, err := schema.LoadFile(path, schema.BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, []schema.ObjectIdentifier{
		{Kind: schema.KindIndex, Name: "users_id_idx"},
		{Kind: schema.KindTable, Name: "public.users"},
	}, snap.Identifiers())

	_, err = schema.LoadFile(filepath.Join(dir, "missing.sql"), schema.BuildOptions{})
	require.Error(t, err)
	require.True(t, errors.Is(err, parser.ErrRead))
}
