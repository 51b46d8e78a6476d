package schema

// ChangeType is the operation a Change performs.
type ChangeType string

const (
	// ChangeDrop indicates an object exists only in the old snapshot
	ChangeDrop ChangeType = "DROP"
	// ChangeCreate indicates an object exists only in the new snapshot
	ChangeCreate ChangeType = "CREATE"
	// ChangeModify indicates an object exists in both with different text
	ChangeModify ChangeType = "MODIFY"
)

// DiffBase contains the fields shared by every change in a Result.
type DiffBase struct {
	// Type is the operation type (CREATE, DROP, MODIFY)
	Type ChangeType

	// Object identifies the schema object being changed
	Object ObjectIdentifier

	// Description is a human-readable description of the change
	Description string

	// Statements are the script lines for the change, SQL and comments
	Statements []string
}

// GetDiffType returns the operation type.
func (d *DiffBase) GetDiffType() ChangeType {
	return d.Type
}

// GetStatements returns the script lines for the change.
func (d *DiffBase) GetStatements() []string {
	return d.Statements
}
