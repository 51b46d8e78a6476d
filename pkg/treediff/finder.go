package treediff

import (
	"io/fs"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
)

type (
	// Finder discovers the dump files under a tree.
	Finder interface {
		// Find returns slash-separated paths relative to the root of fsys.
		Find(fsys fs.FS) ([]string, error)
	}

	// SQLFinder finds regular files whose names end in one of Extensions,
	// matched exactly, so a.SQL is not a .sql file. An empty Extensions means
	// consts.DefaultExtension.
	SQLFinder struct {
		Extensions []string
	}
)

// Find walks fsys and returns the matching paths in lexical order.
func (f SQLFinder) Find(fsys fs.FS) ([]string, error) {
	exts := f.Extensions
	if len(exts) == 0 {
		exts = []string{consts.DefaultExtension}
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if slices.ContainsFunc(exts, func(ext string) bool { return strings.HasSuffix(d.Name(), ext) }) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk directory")
	}

	slices.Sort(paths)
	return paths, nil
}
