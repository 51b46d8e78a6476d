package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pseudomuto/dumpdiff/pkg/cmd/testutil"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// runApp runs the fully wired CLI and returns its output and exit code.
func runApp(t *testing.T, args ...string) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	app := fxtest.New(t,
		config.Module,
		Module,
		fx.Provide(
			func() context.Context { return context.Background() },
			func() io.Writer { return &buf },
		),
		fx.Supply(
			append([]string{"dumpdiff"}, args...),
			&Version{Version: "test"},
		),
	)

	app.RequireStart()
	sig := <-app.Wait()
	app.RequireStop()

	return buf.String(), sig.ExitCode
}

func TestRun_ExitCodes(t *testing.T) {
	fixture := testutil.TestDumps(t).WithFiles(map[string]string{
		"old.sql":   "CREATE TABLE public.users (id integer);",
		"same.sql":  "CREATE TABLE public.users (id integer);",
		"new.sql":   "CREATE TABLE public.users (id integer);\nCREATE INDEX users_id_idx ON public.users (id);",
		"bad.yaml":  "dialect: oracle",
		"pg16.yaml": "dialect: pg16",
	})

	tests := []struct {
		name     string
		args     []string
		expected int
		output   string
	}{
		{
			name:     "no differences",
			args:     []string{"files", fixture.Path("old.sql"), fixture.Path("same.sql")},
			expected: consts.ExitNoDifferences,
		},
		{
			name:     "differences",
			args:     []string{"files", fixture.Path("old.sql"), fixture.Path("new.sql")},
			expected: consts.ExitDifferences,
			output:   "CREATE INDEX users_id_idx ON public.users (id);\n",
		},
		{
			name:     "valid config file",
			args:     []string{"--config", fixture.Path("pg16.yaml"), "files", fixture.Path("old.sql"), fixture.Path("same.sql")},
			expected: consts.ExitNoDifferences,
		},
		{
			name:     "invalid config file",
			args:     []string{"--config", fixture.Path("bad.yaml"), "files", fixture.Path("old.sql"), fixture.Path("same.sql")},
			expected: consts.ExitFailure,
		},
		{
			name:     "missing config file",
			args:     []string{"-c", fixture.Path("missing.yaml"), "files", fixture.Path("old.sql"), fixture.Path("same.sql")},
			expected: consts.ExitFailure,
		},
		{
			name:     "missing dump",
			args:     []string{"files", fixture.Path("old.sql"), fixture.Path("missing.sql")},
			expected: consts.ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, code := runApp(t, tt.args...)
			require.Equal(t, tt.expected, code)
			require.Equal(t, tt.output, output)
		})
	}
}

func TestRun_ConfigFromEnvironment(t *testing.T) {
	fixture := testutil.TestDumps(t).WithFiles(map[string]string{
		"a.sql": "CREATE TABLE public.users (id integer);",
	})

	t.Setenv(consts.ConfigEnvVar, fixture.Path("missing.yaml"))

	_, code := runApp(t, "files", fixture.Path("a.sql"), fixture.Path("a.sql"))
	require.Equal(t, consts.ExitFailure, code)
}

func TestRun_ConfigFromWorkingDirectory(t *testing.T) {
	fixture := testutil.TestDumps(t).WithFiles(map[string]string{
		"a.sql":                  "CREATE TABLE public.users (id integer);",
		consts.DefaultConfigFile: "dialect: oracle",
	})

	t.Chdir(fixture.Dir)

	_, code := runApp(t, "files", "a.sql", "a.sql")
	require.Equal(t, consts.ExitFailure, code)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, consts.ExitNoDifferences, exitCode(&Outcome{}))
	require.Equal(t, consts.ExitDifferences, exitCode(&Outcome{Differences: true}))
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLines(&buf, nil))
	require.Empty(t, buf.String())

	require.NoError(t, writeLines(&buf, []string{"-- MODIFIED: TABLE public.users", "ALTER TABLE public.users DROP COLUMN name;"}))
	require.Equal(t, "-- MODIFIED: TABLE public.users\nALTER TABLE public.users DROP COLUMN name;\n", buf.String())
}
