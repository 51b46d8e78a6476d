package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/pseudomuto/dumpdiff/pkg/treediff"
	"github.com/urfave/cli/v3"
)

// dirs creates a CLI command that compares two directory trees of dump files.
// Files are paired by relative path; see treediff.Compare for the output.
//
// A pair that fails to parse is reported inline and the remaining pairs are
// still compared, but the command exits with the failure code.
//
// Examples:
//
//	dumpdiff dirs dumps/v1 dumps/v2
func dirs(cfg *config.Config, out *Outcome) *cli.Command {
	return &cli.Command{
		Name:      "dirs",
		Usage:     "Compare two directories of SQL dump files",
		ArgsUsage: "<old-dir> <new-dir>",
		Flags:     []cli.Flag{syntaxFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 2, "<old-dir> <new-dir>")
			if err != nil {
				return err
			}

			d, err := resolveDialect(cmd, cfg)
			if err != nil {
				return err
			}

			report, err := treediff.CompareDirs(args[0], args[1], treediff.Options{
				Dialect: d,
				Finder:  treediff.SQLFinder{Extensions: cfg.Extensions},
				Build:   buildOptions(cfg),
				Logger:  slog.Default(),
			})
			if err != nil {
				return errors.Wrap(err, "failed to compare directories")
			}

			out.Differences = report.Differences
			for _, u := range report.Unsupported {
				warnUnsupported(u.Path, []*schema.Change{u.Change})
			}

			if err := writeLines(cmd.Root().Writer, report.Lines); err != nil {
				return err
			}

			if len(report.Failures) > 0 {
				for _, f := range report.Failures {
					slog.Error("Failed to compare files", "path", f.Path, "err", f.Err)
				}

				return errors.Errorf("failed to compare %d file pair(s)", len(report.Failures))
			}

			return nil
		},
	}
}
