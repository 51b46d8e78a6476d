package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/pseudomuto/dumpdiff/pkg/parser"
	"github.com/pseudomuto/dumpdiff/pkg/treediff"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command that rewrites dumps in the normalized form the
// differ compares: comments removed, whitespace collapsed, keywords upper-cased
// and one statement per line. Running it over two dumps before diffing them by
// hand shows exactly what dumpdiff sees.
//
// Directories are walked recursively for files with the configured extensions.
//
// Flags:
//   - -w: Write normalized results back to source files instead of stdout
//
// Examples:
//
//	# Print the normalized dump
//	dumpdiff fmt schema.sql
//
//	# Normalize every dump under db/ in place
//	dumpdiff fmt -w db/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Print dump files in normalized form",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 1, "<path>")
			if err != nil {
				return err
			}

			return formatPath(args[0], cfg.Extensions, cmd.Bool("write"), cmd.Root().Writer)
		},
	}
}

func formatPath(path string, extensions []string, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, extensions, writeBack, writer)
	}

	return formatFile(path, writeBack, writer)
}

// formatDirectory formats every matching file under dir in lexicographical
// order of relative path.
func formatDirectory(dir string, extensions []string, writeBack bool, writer io.Writer) error {
	paths, err := treediff.SQLFinder{Extensions: extensions}.Find(os.DirFS(dir))
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(paths) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, rel := range paths {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := formatFile(path, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", path)
		}
	}

	return nil
}

func formatFile(path string, writeBack bool, writer io.Writer) error {
	stmts, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	var buf strings.Builder
	for _, stmt := range stmts {
		norm, err := parser.Normalize(stmt)
		if err != nil {
			return errors.Wrapf(err, "failed to normalize statement in %s", path)
		}

		buf.WriteString(norm)
		buf.WriteString(";\n")
	}

	if writeBack {
		if err := os.WriteFile(path, []byte(buf.String()), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write normalized content to file: %s", path)
		}

		return nil
	}

	if _, err := fmt.Fprint(writer, buf.String()); err != nil {
		return errors.Wrap(err, "failed to write normalized content to output")
	}

	return nil
}
