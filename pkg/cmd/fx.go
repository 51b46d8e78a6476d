package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		func() *Outcome { return &Outcome{} },
		fx.Annotate(dirs, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(files, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(objects, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
