package dialect

// EditKind is the token naming a single table edit. Template sets are keyed by it.
type EditKind string

const (
	EditAddColumn       EditKind = "add_column"
	EditDropColumn      EditKind = "drop_column"
	EditRenameColumn    EditKind = "rename_column"
	EditAlterColumnType EditKind = "alter_column_type"
	EditSetDefault      EditKind = "set_default"
	EditDropDefault     EditKind = "drop_default"
	EditSetNotNull      EditKind = "set_not_null"
	EditDropNotNull     EditKind = "drop_not_null"
	EditAddConstraint   EditKind = "add_constraint"
	EditDropConstraint  EditKind = "drop_constraint"
)

type (
	// Edit is one change to a table definition. The set of edits is closed; every
	// variant is declared in this file.
	Edit interface {
		// Kind returns the token used to select a template.
		Kind() EditKind
		// Table returns the name of the table being changed.
		Table() string

		placeholders() map[string]string
	}

	// AddColumn adds a column. Definition is the full clause after the column
	// name, e.g. "timestamp NOT NULL DEFAULT now()".
	AddColumn struct {
		TableName  string
		Column     string
		Definition string
	}

	// DropColumn removes a column.
	DropColumn struct {
		TableName string
		Column    string
	}

	// RenameColumn renames OldColumn to NewColumn.
	RenameColumn struct {
		TableName string
		OldColumn string
		NewColumn string
	}

	// AlterColumnType changes a column's type.
	AlterColumnType struct {
		TableName string
		Column    string
		Type      string
	}

	// SetDefault sets or replaces a column default.
	SetDefault struct {
		TableName string
		Column    string
		Default   string
	}

	// DropDefault removes a column default.
	DropDefault struct {
		TableName string
		Column    string
	}

	// SetNotNull adds a NOT NULL restriction.
	SetNotNull struct {
		TableName string
		Column    string
	}

	// DropNotNull removes a NOT NULL restriction.
	DropNotNull struct {
		TableName string
		Column    string
	}

	// AddConstraint adds a named table constraint.
	AddConstraint struct {
		TableName  string
		Constraint string
		Definition string
	}

	// DropConstraint removes a named table constraint.
	DropConstraint struct {
		TableName  string
		Constraint string
	}
)

func (AddColumn) Kind() EditKind       { return EditAddColumn }
func (DropColumn) Kind() EditKind      { return EditDropColumn }
func (RenameColumn) Kind() EditKind    { return EditRenameColumn }
func (AlterColumnType) Kind() EditKind { return EditAlterColumnType }
func (SetDefault) Kind() EditKind      { return EditSetDefault }
func (DropDefault) Kind() EditKind     { return EditDropDefault }
func (SetNotNull) Kind() EditKind      { return EditSetNotNull }
func (DropNotNull) Kind() EditKind     { return EditDropNotNull }
func (AddConstraint) Kind() EditKind   { return EditAddConstraint }
func (DropConstraint) Kind() EditKind  { return EditDropConstraint }

func (e AddColumn) Table() string       { return e.TableName }
func (e DropColumn) Table() string      { return e.TableName }
func (e RenameColumn) Table() string    { return e.TableName }
func (e AlterColumnType) Table() string { return e.TableName }
func (e SetDefault) Table() string      { return e.TableName }
func (e DropDefault) Table() string     { return e.TableName }
func (e SetNotNull) Table() string      { return e.TableName }
func (e DropNotNull) Table() string     { return e.TableName }
func (e AddConstraint) Table() string   { return e.TableName }
func (e DropConstraint) Table() string  { return e.TableName }

func (e AddColumn) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column, "definition": e.Definition}
}

func (e DropColumn) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column}
}

func (e RenameColumn) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "old_column": e.OldColumn, "new_column": e.NewColumn}
}

func (e AlterColumnType) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column, "type": e.Type}
}

func (e SetDefault) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column, "default": e.Default}
}

func (e DropDefault) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column}
}

func (e SetNotNull) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column}
}

func (e DropNotNull) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "column": e.Column}
}

func (e AddConstraint) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "constraint": e.Constraint, "definition": e.Definition}
}

func (e DropConstraint) placeholders() map[string]string {
	return map[string]string{"table": e.TableName, "constraint": e.Constraint}
}
