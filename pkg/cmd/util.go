package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/dialect"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/urfave/cli/v3"
)

// syntaxFlag selects the output dialect. The default comes from the config at
// run time, so it is resolved in resolveDialect rather than set here.
func syntaxFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "syntax",
		Aliases: []string{"s"},
		Usage:   fmt.Sprintf("SQL syntax for the output (%s)", strings.Join(dialect.Names(), ", ")),
	}
}

// resolveDialect returns the dialect named by --syntax or the config. Names
// outside the accepted set are rejected; accepted names without templates of
// their own fall back to the default with a warning.
func resolveDialect(cmd *cli.Command, cfg *config.Config) (dialect.Dialect, error) {
	name := cmd.String("syntax")
	if name == "" {
		name = cfg.Dialect
	}

	if !dialect.Known(name) {
		return nil, errors.Wrapf(config.ErrUnknownDialect, "%q (expected one of %s)", name, strings.Join(dialect.Names(), ", "))
	}

	d, fallback := dialect.Lookup(name)
	if fallback {
		slog.Warn("Dialect has no templates of its own, falling back", "dialect", name, "using", d.Name())
	}

	return d, nil
}

func buildOptions(cfg *config.Config) schema.BuildOptions {
	return schema.BuildOptions{
		Ignore: cfg.Ignore,
		Logger: slog.Default(),
	}
}

func exactArgs(cmd *cli.Command, n int, usage string) ([]string, error) {
	if cmd.Args().Len() != n {
		return nil, errors.Errorf("expected %d argument(s): %s", n, usage)
	}

	return cmd.Args().Slice(), nil
}

func warnUnsupported(path string, changes []*schema.Change) {
	for _, c := range changes {
		attrs := []any{"change", c.Description, "type", c.GetDiffType()}
		if path != "" {
			attrs = append(attrs, "path", path)
		}

		slog.Warn("Change detected but not remediated", attrs...)
	}
}

// writeLines writes the script lines to w, newline separated. Nothing is
// written for an empty script.
func writeLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return errors.Wrap(err, "failed to write output")
}
