// Package testutil holds fixtures for the CLI command tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// DumpFixture is a temp directory holding dump files for a test.
type DumpFixture struct {
	Dir string
	t   *testing.T
}

// TestDumps creates an empty fixture rooted in a fresh temp directory.
func TestDumps(t *testing.T) *DumpFixture {
	t.Helper()
	return &DumpFixture{Dir: t.TempDir(), t: t}
}

// WithFiles writes each path/content pair below the fixture root, creating
// parent directories as needed.
func (f *DumpFixture) WithFiles(files map[string]string) *DumpFixture {
	f.t.Helper()

	for path, content := range files {
		full := f.Path(path)
		require.NoError(f.t, os.MkdirAll(filepath.Dir(full), consts.ModeDir), "Failed to create directory for %s", path)
		require.NoError(f.t, os.WriteFile(full, []byte(content), consts.ModeFile), "Failed to write %s", path)
	}

	return f
}

// Path returns the absolute path of a slash-separated path in the fixture.
func (f *DumpFixture) Path(rel string) string {
	return filepath.Join(f.Dir, filepath.FromSlash(rel))
}

// Read returns the content of a fixture file.
func (f *DumpFixture) Read(rel string) string {
	f.t.Helper()

	data, err := os.ReadFile(f.Path(rel))
	require.NoError(f.t, err, "Failed to read %s", rel)
	return string(data)
}

// RunCommand runs command with args and returns what it wrote to its writer.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}
