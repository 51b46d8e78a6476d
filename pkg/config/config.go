package config

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
	"gopkg.in/yaml.v3"
)

// ErrUnknownDialect is returned when the configured dialect is not an accepted
// selector.
var ErrUnknownDialect = errors.New("unknown dialect")

// Config represents the dumpdiff configuration file.
type Config struct {
	// Dialect selects the SQL dialect used to render table edits
	Dialect string `yaml:"dialect"`

	// Ignore lists substrings that exclude a statement from comparison. When the
	// key is absent the built-in list is used; an empty list ignores nothing.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file suffixes compared in directory mode
	Extensions []string `yaml:"extensions"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Missing keys take their defaults: dialect pg15, the built-in ignore list, the
// .sql extension and info logging. The dialect must be one of dialect.Names().
//
// Example:
//
//	yamlData := `
//	dialect: pg16
//	ignore:
//	  - "SET "
//	  - "COMMENT ON"
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("dumpdiff.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Resolve loads the configuration at path. An empty path means
// consts.DefaultConfigFile in the working directory when it exists, and
// Default() when it does not. A named file that is missing is an error.
//
// Example:
//
//	cfg, err := config.Resolve(os.Getenv(consts.ConfigEnvVar))
//	if err != nil {
//		return err
//	}
func Resolve(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(consts.DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		path = consts.DefaultConfigFile
	}

	return LoadConfigFile(path)
}

// Validate checks the dialect and log level.
func (c *Config) Validate() error {
	if !dialect.Known(c.Dialect) {
		return errors.Wrapf(ErrUnknownDialect, "%q (expected one of %s)", c.Dialect, strings.Join(dialect.Names(), ", "))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}

	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (c *Config) applyDefaults() {
	if c.Dialect == "" {
		c.Dialect = consts.DefaultDialect
	}

	if c.Ignore == nil {
		c.Ignore = slices.Clone(consts.DefaultIgnore)
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{consts.DefaultExtension}
	}

	if c.LogLevel == "" {
		c.LogLevel = consts.DefaultLogLevel
	}
}
