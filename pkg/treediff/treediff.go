package treediff

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/compare"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
)

type (
	// Options configure a tree comparison.
	Options struct {
		// Dialect renders table edits. Defaults to dialect.Default.
		Dialect dialect.Dialect

		// Finder discovers dump files. Defaults to SQLFinder{}.
		Finder Finder

		// Build is passed to schema.Build for every file.
		Build schema.BuildOptions

		// Logger receives per-file debug output.
		Logger *slog.Logger
	}

	// Failure records a file pair that could not be compared.
	Failure struct {
		Path string
		Err  error
	}

	// UnsupportedChange is a change in a file pair that was flagged but not
	// remediated.
	UnsupportedChange struct {
		Path   string
		Change *schema.Change
	}

	// Report is the aggregated outcome of a tree comparison.
	Report struct {
		// Lines is the combined script, one entry per output line or file body.
		Lines []string

		// Differences is true when any common file changed or any file was added
		// or removed.
		Differences bool

		// Failures lists file pairs whose comparison failed. Their output is a
		// single comment line and the rest of the tree is still compared.
		Failures []Failure

		// Unsupported lists changes that need manual attention.
		Unsupported []UnsupportedChange
	}

	comparer struct {
		oldFS, newFS fs.FS
		opts         Options
		log          *slog.Logger
		report       *Report
	}
)

// CompareDirs compares the dump trees rooted at two directories.
//
// Example:
//
//	report, err := treediff.CompareDirs("dumps/v1", "dumps/v2", treediff.Options{})
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(strings.Join(report.Lines, "\n"))
func CompareDirs(oldRoot, newRoot string, opts Options) (*Report, error) {
	for _, root := range []string{oldRoot, newRoot} {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access directory: %s", root)
		}

		if !info.IsDir() {
			return nil, errors.Errorf("not a directory: %s", root)
		}
	}

	return Compare(os.DirFS(oldRoot), os.DirFS(newRoot), opts)
}

// Compare compares two dump trees file by file.
//
// Paths in both trees are diffed with schema.Diff and always get a
// "-- Comparing files" header; the script follows only when the pair changed.
// Paths only in the new tree are emitted verbatim after a "-- New file"
// header. Paths only in the old tree get a "-- Removed file" header and a note
// that DROP statements must be written by hand. Each group is sorted by path
// and the groups come in that order.
//
// A failure to read or diff one pair is recorded in Report.Failures and does
// not stop the others. Only a failure to discover files returns an error.
func Compare(oldFS, newFS fs.FS, opts Options) (*Report, error) {
	if opts.Dialect == nil {
		opts.Dialect, _ = dialect.Lookup(dialect.Default)
	}

	if opts.Finder == nil {
		opts.Finder = SQLFinder{}
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	oldPaths, err := opts.Finder.Find(oldFS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find files in old tree")
	}

	newPaths, err := opts.Finder.Find(newFS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find files in new tree")
	}

	removed, added, common := compare.Partition(pathSet(oldPaths), pathSet(newPaths), strings.Compare)

	c := &comparer{
		oldFS:  oldFS,
		newFS:  newFS,
		opts:   opts,
		log:    log,
		report: &Report{Lines: make([]string, 0)},
	}

	for _, path := range common {
		c.common(path)
	}

	for _, path := range added {
		c.added(path)
	}

	for _, path := range removed {
		c.removed(path)
	}

	return c.report, nil
}

func (c *comparer) common(path string) {
	c.log.Debug("Comparing files", "path", path)
	c.emit(fmt.Sprintf("-- Comparing files: %s", path))

	result, err := c.diff(path)
	if err != nil {
		c.fail(path, err)
		return
	}

	if !result.Changed {
		return
	}

	c.report.Differences = true
	c.emit(result.Script()...)

	for _, change := range result.Unsupported() {
		c.report.Unsupported = append(c.report.Unsupported, UnsupportedChange{Path: path, Change: change})
	}
}

func (c *comparer) diff(path string) (*schema.Result, error) {
	from, err := schema.LoadFS(c.oldFS, path, c.opts.Build)
	if err != nil {
		return nil, err
	}

	to, err := schema.LoadFS(c.newFS, path, c.opts.Build)
	if err != nil {
		return nil, err
	}

	return schema.Diff(from, to, c.opts.Dialect)
}

func (c *comparer) added(path string) {
	c.log.Debug("New file", "path", path)
	c.report.Differences = true
	c.emit(fmt.Sprintf("-- New file: %s", path))

	content, err := fs.ReadFile(c.newFS, path)
	if err != nil {
		c.fail(path, errors.Wrap(err, "failed to read file"))
		return
	}

	c.emit(string(content))
}

func (c *comparer) removed(path string) {
	c.log.Debug("Removed file", "path", path)
	c.report.Differences = true
	c.emit(
		fmt.Sprintf("-- Removed file: %s", path),
		"-- To remove the objects in this file, you may need to manually create DROP statements.",
	)
}

func (c *comparer) fail(path string, err error) {
	c.log.Debug("Failed to compare files", "path", path, "err", err)
	c.report.Failures = append(c.report.Failures, Failure{Path: path, Err: err})
	c.emit(fmt.Sprintf("-- Failed to compare files: %s: %v", path, err))
}

func (c *comparer) emit(lines ...string) {
	c.report.Lines = append(c.report.Lines, lines...)
}

func pathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}
