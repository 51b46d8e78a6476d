package schema

import (
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/compare"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
)

// GenerateAlterTable returns the edits that turn from into to. Edits target
// from's table name and come in this order: column renames, added columns,
// dropped columns, attribute changes on common columns (type, default, then
// nullability), added constraints and dropped constraints. Every group is
// sorted by name. Identical tables produce no edits.
//
// A removed and an added column with exactly the same type are treated as a
// rename (see DetectRenames). Constraints are compared by name only, so a
// constraint whose definition changed under the same name yields no edit.
func GenerateAlterTable(from, to *TableDefinition) []dialect.Edit {
	table := from.Name
	edits := make([]dialect.Edit, 0)

	removedNames, addedNames, commonNames := compare.Partition(from.Columns, to.Columns, strings.Compare)
	removed := pick(from.Columns, removedNames)
	added := pick(to.Columns, addedNames)

	renames, removed, added := DetectRenames(removed, added, func(a, b ColumnDefinition) bool {
		return a.Type == b.Type
	})

	// from definitions keyed by their names in to
	oldCols := maps.Clone(from.Columns)
	for _, r := range renames {
		edits = append(edits, dialect.RenameColumn{TableName: table, OldColumn: r.OldName, NewColumn: r.NewName})
		oldCols[r.NewName] = oldCols[r.OldName]
		delete(oldCols, r.OldName)
		commonNames = append(commonNames, r.NewName)
	}
	slices.Sort(commonNames)

	for _, name := range compare.SortedKeys(added) {
		edits = append(edits, dialect.AddColumn{TableName: table, Column: name, Definition: added[name].Clause()})
	}

	for _, name := range compare.SortedKeys(removed) {
		edits = append(edits, dialect.DropColumn{TableName: table, Column: name})
	}

	for _, name := range commonNames {
		edits = append(edits, columnEdits(table, name, oldCols[name], to.Columns[name])...)
	}

	droppedCons, addedCons, _ := compare.Partition(from.Constraints, to.Constraints, strings.Compare)
	for _, name := range addedCons {
		edits = append(edits, dialect.AddConstraint{TableName: table, Constraint: name, Definition: to.Constraints[name]})
	}

	for _, name := range droppedCons {
		edits = append(edits, dialect.DropConstraint{TableName: table, Constraint: name})
	}

	return edits
}

func columnEdits(table, column string, from, to ColumnDefinition) []dialect.Edit {
	var edits []dialect.Edit

	if from.Type != to.Type {
		edits = append(edits, dialect.AlterColumnType{TableName: table, Column: column, Type: to.Type})
	}

	if !compare.Pointers(from.Default, to.Default) {
		if to.Default != nil {
			edits = append(edits, dialect.SetDefault{TableName: table, Column: column, Default: *to.Default})
		} else {
			edits = append(edits, dialect.DropDefault{TableName: table, Column: column})
		}
	}

	if from.NotNull != to.NotNull {
		if to.NotNull {
			edits = append(edits, dialect.SetNotNull{TableName: table, Column: column})
		} else {
			edits = append(edits, dialect.DropNotNull{TableName: table, Column: column})
		}
	}

	return edits
}

// RenderEdits renders edits in order with d.
func RenderEdits(d dialect.Dialect, edits []dialect.Edit) ([]string, error) {
	stmts := make([]string, 0, len(edits))
	for _, e := range edits {
		sql, err := d.Render(e)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s on %s", e.Kind(), e.Table())
		}
		stmts = append(stmts, sql)
	}

	return stmts, nil
}

func pick[V any](m map[string]V, keys []string) map[string]V {
	out := make(map[string]V, len(keys))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}
