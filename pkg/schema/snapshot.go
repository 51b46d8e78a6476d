package schema

import (
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/pseudomuto/dumpdiff/pkg/parser"
)

type (
	// Snapshot maps every object defined by a dump to its normalized statement.
	// It is immutable once built.
	Snapshot struct {
		objects map[ObjectIdentifier]string
	}

	// BuildOptions control how statements are folded into a Snapshot.
	BuildOptions struct {
		// Ignore lists substrings; a normalized statement containing any of them
		// is skipped. A nil slice means consts.DefaultIgnore, an empty slice
		// ignores nothing.
		Ignore []string

		// Logger receives debug output about skipped and overwritten statements.
		Logger *slog.Logger
	}
)

// Build folds statements into a Snapshot.
//
// Each statement is normalized and skipped when empty or when it contains an
// ignore substring. Classified statements are stored under their identifier and
// a later definition of the same object replaces an earlier one. Unclassified
// statements are stored as KindUnknown keyed by their full text, except DROP
// statements which are discarded.
//
// Example:
//
//	stmts, _ := parser.ParseFile("v1.sql")
//	snap, err := schema.Build(stmts, schema.BuildOptions{})
//	if err != nil {
//		return err
//	}
//
//	for _, id := range snap.Identifiers() {
//		fmt.Println(id)
//	}
func Build(stmts []string, opts BuildOptions) (*Snapshot, error) {
	ignore := opts.Ignore
	if ignore == nil {
		ignore = consts.DefaultIgnore
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	snap := &Snapshot{objects: make(map[ObjectIdentifier]string, len(stmts))}
	for _, stmt := range stmts {
		norm, err := parser.Normalize(stmt)
		if err != nil {
			return nil, errors.Wrap(err, "failed to normalize statement")
		}

		if norm == "" {
			continue
		}

		if ignored(norm, ignore) {
			log.Debug("Ignoring statement", "statement", norm)
			continue
		}

		id, ok := classifyNormalized(norm)
		if !ok {
			if strings.HasPrefix(norm, "DROP") {
				log.Debug("Discarding unclassified DROP statement", "statement", norm)
				continue
			}

			id = ObjectIdentifier{Kind: KindUnknown, Name: norm}
		}

		if _, exists := snap.objects[id]; exists {
			log.Debug("Replacing earlier definition", "object", id.String())
		}

		snap.objects[id] = norm
	}

	return snap, nil
}

// LoadFile reads and splits the dump at path, then builds its Snapshot.
func LoadFile(path string, opts BuildOptions) (*Snapshot, error) {
	stmts, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return Build(stmts, opts)
}

// LoadFS reads and splits the dump at name in fsys, then builds its Snapshot.
func LoadFS(fsys fs.FS, name string, opts BuildOptions) (*Snapshot, error) {
	stmts, err := parser.ParseFS(fsys, name)
	if err != nil {
		return nil, err
	}

	return Build(stmts, opts)
}

func ignored(stmt string, substrings []string) bool {
	return slices.ContainsFunc(substrings, func(s string) bool {
		return s != "" && strings.Contains(stmt, s)
	})
}

// Len returns the number of objects in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.objects)
}

// Get returns the normalized statement defining id.
func (s *Snapshot) Get(id ObjectIdentifier) (string, bool) {
	stmt, ok := s.objects[id]
	return stmt, ok
}

// Identifiers returns every identifier in the snapshot, sorted by kind then name.
func (s *Snapshot) Identifiers() []ObjectIdentifier {
	ids := make([]ObjectIdentifier, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, ObjectIdentifier.Compare)
	return ids
}
