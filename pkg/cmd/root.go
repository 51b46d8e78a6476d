package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Outcome    *Outcome
		Shutdowner fx.Shutdowner
		Stdout     io.Writer `optional:"true"`
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// Outcome is shared by the commands and Run. Commands record whether they
	// found differences; Run turns that into the process exit code.
	Outcome struct {
		Differences bool
	}
)

// Run creates and executes the dumpdiff CLI application with the injected
// commands and arguments.
//
// Global Flags:
//   - --config, -c: config file (also DUMPDIFF_CONFIG, default ./dumpdiff.yaml when present)
//   - --verbose, -v: debug logging
//
// Exit codes:
//   - 0: no differences
//   - 1: differences found
//   - 2: read, parse or usage failure
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "dumpdiff",
		Usage: "Generate migration scripts between PostgreSQL schema dumps",
		Description: `dumpdiff compares two schema dumps (or two directory trees of dumps) and
prints the ALTER/CREATE/DROP statements that turn the old schema into the new
one. Changes that cannot be generated safely are flagged with comments.`,
		Version:  p.Version.Version,
		Flags:    globalFlags(),
		Before:   configure(p.Config),
		Writer:   p.Stdout,
		Commands: p.Commands,
	}

	// OnStart only launches the command; its exit code arrives through the
	// shutdown signal.
	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running command", "err", err)
				_ = p.Shutdowner.Shutdown(fx.ExitCode(consts.ExitFailure))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(exitCode(p.Outcome)))
		}()
	}))
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the dumpdiff config file (default: ./" + consts.DefaultConfigFile + " when present)",
			Sources: cli.EnvVars(consts.ConfigEnvVar),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
		},
	}
}

// configure loads the config named by --config (or DUMPDIFF_CONFIG, or the
// default file) into cfg and installs the stderr logger. Load failures are
// returned so they exit like any other command failure.
func configure(cfg *config.Config) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		loaded, err := config.Resolve(cmd.String("config"))
		if err != nil {
			return ctx, errors.Wrap(err, "failed to load config")
		}

		*cfg = *loaded

		level := cfg.Level()
		if cmd.Bool("verbose") {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return ctx, nil
	}
}

func exitCode(o *Outcome) int {
	if o.Differences {
		return consts.ExitDifferences
	}

	return consts.ExitNoDifferences
}
