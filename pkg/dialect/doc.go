// Package dialect renders table edits as SQL for a target database.
//
// The table migration generator produces typed edits (AddColumn, RenameColumn,
// SetNotNull, ...). A Dialect turns each edit into a statement, which keeps the
// diff algorithm independent of SQL syntax:
//
//	d, fallback := dialect.Lookup("pg16")
//	if fallback {
//		slog.Warn("Dialect has no templates, using default", "dialect", "pg16", "default", d.Name())
//	}
//
//	sql, err := d.Render(dialect.RenameColumn{
//		TableName: "public.users",
//		OldColumn: "name",
//		NewColumn: "username",
//	})
//	// sql == "ALTER TABLE public.users RENAME COLUMN name TO username;"
//
// Only pg15 has templates. The other accepted selectors (pg16, gbq, sqlite3)
// resolve to it and Lookup reports the fallback.
package dialect
