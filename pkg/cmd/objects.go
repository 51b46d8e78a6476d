package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/schema"
	"github.com/urfave/cli/v3"
)

// objects creates a CLI command that lists the objects identified in a dump,
// one "<KIND> <name>" per line in the order used for script output. It is
// useful for checking what a diff will be keyed on.
func objects(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "objects",
		Usage:     "List the schema objects identified in a dump file",
		ArgsUsage: "<file.sql>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 1, "<file.sql>")
			if err != nil {
				return err
			}

			snap, err := schema.LoadFile(args[0], buildOptions(cfg))
			if err != nil {
				return errors.Wrapf(err, "failed to load %s", args[0])
			}

			for _, id := range snap.Identifiers() {
				if _, err := fmt.Fprintln(cmd.Root().Writer, id.String()); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}

			return nil
		},
	}
}
