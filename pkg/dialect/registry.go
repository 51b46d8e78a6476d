package dialect

import (
	"slices"

	"github.com/pseudomuto/dumpdiff/pkg/consts"
)

// Default is the selector used when none is configured.
const Default = consts.DefaultDialect

var (
	// registered dialects have their own templates.
	registered = map[string]Dialect{
		"pg15": New("pg15", PG15),
	}

	// known lists every accepted selector, including those that degrade to Default.
	known = []string{"gbq", "pg15", "pg16", "sqlite3"}
)

// Names returns the closed set of accepted dialect selectors, sorted.
func Names() []string {
	return slices.Clone(known)
}

// Known reports whether name is an accepted selector.
func Known(name string) bool {
	return slices.Contains(known, name)
}

// Lookup returns the dialect registered under name. When name has no templates
// of its own, the Default dialect is returned and fallback is true so callers
// can report the substitution.
//
// Example:
//
//	d, fallback := dialect.Lookup("sqlite3")
//	// d.Name() == "pg15", fallback == true
func Lookup(name string) (d Dialect, fallback bool) {
	if d, ok := registered[name]; ok {
		return d, false
	}

	return registered[Default], true
}
