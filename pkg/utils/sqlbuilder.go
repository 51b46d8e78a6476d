package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building PostgreSQL DDL statements.
// Identifiers are written verbatim; quoting is the caller's concern because dump
// text already carries whatever quoting the source database used.
//
// Example usage:
//
//	sql := utils.NewSQLBuilder().
//		Drop("VIEW").
//		IfExists().
//		Name("public.active_users").
//		String()
//	// Output: DROP VIEW IF EXISTS public.active_users;
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 8),
	}
}

// Drop adds a DROP clause with the specified object type.
//
// Example:
//
//	builder.Drop("INDEX")       // DROP INDEX
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// IfExists adds an IF EXISTS clause. This should be called after DROP operations.
func (b *SQLBuilder) IfExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "EXISTS")
	return b
}

// Name adds an object name as-is. Empty names are skipped.
//
// Example:
//
//	builder.Name("public.users")        // public.users
//	builder.Name(`"Sales"."Orders"`)    // "Sales"."Orders"
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, name)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
//
// Example:
//
//	sql := builder.Drop("SEQUENCE").IfExists().Name("public.users_id_seq").String()
//	// Returns: "DROP SEQUENCE IF EXISTS public.users_id_seq;"
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}
