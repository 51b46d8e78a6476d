package schema

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/compare"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
)

type (
	// Change is one object-level difference between two snapshots. Remediated is
	// false when the change was detected but the script only flags it with a
	// comment.
	Change struct {
		DiffBase
		Remediated bool
	}

	// Result is the outcome of diffing two snapshots.
	Result struct {
		// Changes are ordered: drops, creates, then modifications, each sorted by
		// object identifier.
		Changes []*Change

		// Changed is true when any object was added, removed or modified.
		Changed bool
	}
)

// Script returns the migration script lines in order.
func (r *Result) Script() []string {
	lines := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		lines = append(lines, c.GetStatements()...)
	}

	return lines
}

// Unsupported returns the changes that were not auto-remediated.
func (r *Result) Unsupported() []*Change {
	var out []*Change
	for _, c := range r.Changes {
		if !c.Remediated {
			out = append(out, c)
		}
	}

	return out
}

// Diff compares two snapshots and builds the migration from one to the other.
//
// Removed objects are dropped when their kind allows it; removed constraints
// and other kinds only get an explanatory comment. Added objects are created
// from their new statement. Modified functions, views and indexes are dropped
// and recreated, modified tables are migrated with ALTER TABLE statements, and
// any other modified kind is flagged with a comment.
//
// Example:
//
//	d, _ := dialect.Lookup("pg15")
//	result, err := schema.Diff(oldSnap, newSnap, d)
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(strings.Join(result.Script(), "\n"))
func Diff(from, to *Snapshot, d dialect.Dialect) (*Result, error) {
	removed, added, common := compare.Partition(from.objects, to.objects, ObjectIdentifier.Compare)
	result := &Result{Changes: make([]*Change, 0)}

	for _, id := range removed {
		result.Changes = append(result.Changes, dropChange(id, from.objects[id], d))
	}

	for _, id := range added {
		result.Changes = append(result.Changes, &Change{
			DiffBase: DiffBase{
				Type:        ChangeCreate,
				Object:      id,
				Description: fmt.Sprintf("Create %s", id),
				Statements:  []string{to.objects[id] + ";"},
			},
			Remediated: true,
		})
	}

	for _, id := range common {
		if from.objects[id] == to.objects[id] {
			continue
		}

		change, err := modifyChange(id, from.objects[id], to.objects[id], d)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to diff %s", id)
		}
		result.Changes = append(result.Changes, change)
	}

	result.Changed = len(result.Changes) > 0
	return result, nil
}

func dropChange(id ObjectIdentifier, stmt string, d dialect.Dialect) *Change {
	change := &Change{
		DiffBase: DiffBase{
			Type:        ChangeDrop,
			Object:      id,
			Description: fmt.Sprintf("Drop %s", id),
		},
	}

	switch {
	case id.Kind.Droppable():
		change.Statements = []string{d.DropObject(string(id.Kind), id.Name)}
		change.Remediated = true
	case id.Kind == KindConstraint:
		owner := constraintOwner(stmt)
		change.Description = fmt.Sprintf("Drop %s on %s", id, owner)
		change.Statements = []string{fmt.Sprintf(
			"-- Cannot auto-generate DROP for CONSTRAINT %s on table %s. Manual intervention required.",
			id.Name,
			owner,
		)}
	default:
		change.Statements = []string{fmt.Sprintf(
			"-- Don't know how to drop object of type %s with name %s",
			id.Kind,
			id.Name,
		)}
	}

	return change
}

func modifyChange(id ObjectIdentifier, oldStmt, newStmt string, d dialect.Dialect) (*Change, error) {
	change := &Change{
		DiffBase: DiffBase{
			Type:        ChangeModify,
			Object:      id,
			Description: fmt.Sprintf("Modify %s", id),
			Statements:  []string{fmt.Sprintf("-- MODIFIED: %s %s", id.Kind, id.Name)},
		},
	}

	switch {
	case id.Kind.Replaceable():
		change.Statements = append(change.Statements, d.DropObject(string(id.Kind), id.Name), newStmt+";")
		change.Remediated = true
	case id.Kind == KindTable:
		from, err := Decompose(oldStmt)
		if err != nil {
			return nil, err
		}

		to, err := Decompose(newStmt)
		if err != nil {
			return nil, err
		}

		stmts, err := RenderEdits(d, GenerateAlterTable(from, to))
		if err != nil {
			return nil, err
		}

		change.Statements = append(change.Statements, stmts...)
		change.Remediated = len(stmts) > 0
	}

	return change, nil
}
