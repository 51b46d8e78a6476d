// Package utils provides small helpers shared by the dialect and schema packages.
//
// # SQLBuilder
//
// SQLBuilder assembles DDL statements from parts without string formatting
// scattered across callers. Names are written as given, so schema-qualified and
// double-quoted identifiers from a dump pass through untouched:
//
//	sql := utils.NewSQLBuilder().
//		Drop("TABLE").
//		IfExists().
//		Name("public.users").
//		String()
//	// Result: DROP TABLE IF EXISTS public.users;
//
// # Ptr
//
// Ptr returns a pointer to a value, which keeps optional struct fields readable:
//
//	col := schema.ColumnDefinition{Type: "integer", Default: utils.Ptr("0")}
package utils
