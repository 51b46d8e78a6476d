// Package schema models the objects defined by a PostgreSQL dump and computes
// the migration between two versions of it.
//
// The flow is:
//
//  1. Build folds dump statements into a Snapshot keyed by ObjectIdentifier
//     (kind and name). Classify decides the identifier of each statement.
//  2. Diff compares two snapshots and returns a Result whose Script is the
//     migration. Modified tables go through Decompose and GenerateAlterTable.
//  3. A Dialect from the dialect package renders every generated edit.
//
// Usage:
//
//	oldSnap, err := schema.LoadFile("v1.sql", schema.BuildOptions{})
//	if err != nil {
//		return err
//	}
//
//	newSnap, err := schema.LoadFile("v2.sql", schema.BuildOptions{})
//	if err != nil {
//		return err
//	}
//
//	d, _ := dialect.Lookup("pg15")
//	result, err := schema.Diff(oldSnap, newSnap, d)
//	if err != nil {
//		return err
//	}
//
//	for _, line := range result.Script() {
//		fmt.Println(line)
//	}
//
//	for _, c := range result.Unsupported() {
//		slog.Warn("Change needs manual attention", "change", c.Description)
//	}
//
// # Column renames
//
// A column removed from a table and a column added to it with exactly the same
// type are reported as a rename rather than a drop and an add. Removed columns
// are visited in name order and paired with the first added column (by name)
// of equal type. No other signal is used, so two columns of the same type
// swapped between versions can be paired differently than intended.
//
// # Known gaps
//
// Constraints are compared by name. A constraint whose definition changed but
// kept its name produces no statement. Unnamed constraints are named by
// position (<table>_<n>), so adding one ahead of another shifts the names and
// shows up as a drop and an add.
package schema
