package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up when --config is not given
	DefaultConfigFile = "dumpdiff.yaml"

	// ConfigEnvVar names the environment variable holding a config file path
	ConfigEnvVar = "DUMPDIFF_CONFIG"

	// DefaultDialect is the dialect used when none is configured
	DefaultDialect = "pg15"

	// DefaultExtension is the file suffix considered in directory mode
	DefaultExtension = ".sql"

	// DefaultLogLevel is the slog level name used when none is configured
	DefaultLogLevel = "info"
)

// Exit codes reported by the dumpdiff binary.
const (
	ExitNoDifferences = 0
	ExitDifferences   = 1
	ExitFailure       = 2
)

// DefaultIgnore lists the substrings that cause a dump statement to be skipped.
// The match is a plain substring test against the normalized statement.
var DefaultIgnore = []string{
	"SET ",
	"SELECT pg_catalog.set_config",
	"ALTER SEQUENCE",
}
