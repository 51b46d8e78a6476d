package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/urfave/cli/v3"
)

// files creates a CLI command that compares two dump files and prints the
// migration script from the first to the second.
//
// Examples:
//
//	# Compare two dumps using the configured dialect
//	dumpdiff files v1.sql v2.sql
//
//	# Select the output syntax explicitly
//	dumpdiff files -s pg16 v1.sql v2.sql > migrate.sql
func files(cfg *config.Config, out *Outcome) *cli.Command {
	return &cli.Command{
		Name:      "files",
		Usage:     "Compare two SQL dump files",
		ArgsUsage: "<old.sql> <new.sql>",
		Flags:     []cli.Flag{syntaxFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 2, "<old.sql> <new.sql>")
			if err != nil {
				return err
			}

			d, err := resolveDialect(cmd, cfg)
			if err != nil {
				return err
			}

			from, err := schema.LoadFile(args[0], buildOptions(cfg))
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", args[0])
			}

			to, err := schema.LoadFile(args[1], buildOptions(cfg))
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", args[1])
			}

			result, err := schema.Diff(from, to, d)
			if err != nil {
				return errors.Wrap(err, "failed to compare dumps")
			}

			out.Differences = result.Changed
			warnUnsupported("", result.Unsupported())
			return writeLines(cmd.Root().Writer, result.Script())
		},
	}
}
