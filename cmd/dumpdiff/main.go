package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/dumpdiff/pkg/cmd"
	"github.com/pseudomuto/dumpdiff/pkg/config"
	"github.com/pseudomuto/dumpdiff/pkg/consts"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx := context.Background()

	app := fx.New(
		config.Module,
		cmd.Module,
		fx.Provide(func() context.Context { return ctx }),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.NopLogger,
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start dumpdiff", "err", err)
		os.Exit(consts.ExitFailure)
	}

	sig := <-app.Wait()
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to stop dumpdiff", "err", err)
	}

	os.Exit(sig.ExitCode)
}
