// Package cmd provides the CLI commands for dumpdiff.
//
// Commands are plain *cli.Command values built by constructor functions and
// collected into an fx value group, so main only has to wire the modules:
//
//	fx.New(
//		config.Module,
//		cmd.Module,
//		fx.Supply(os.Args, ctx, &cmd.Version{...}),
//	).Run()
//
// # Available Commands
//
//   - files: compare two dump files and print the migration script
//   - dirs: compare two directory trees of dumps, pairing files by relative path
//   - objects: list the object identifiers found in a dump
//   - fmt: print (or rewrite) dumps in normalized form
//
// # Global Options
//
//   - --config, -c: config file, also read from DUMPDIFF_CONFIG
//   - --verbose, -v: debug logging on stderr
//
// # Exit Codes
//
// The process exits 0 when the inputs are equivalent, 1 when differences were
// found and 2 when an input could not be read or parsed or the arguments were
// invalid. Warnings about changes that need manual work go to stderr; stdout
// only ever carries the script.
package cmd
