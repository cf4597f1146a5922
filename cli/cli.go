package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/janusbuild/cli/cmd"
	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/ide"
	"github.com/ardnew/janusbuild/pkg"
)

// CLI is the top-level command-line interface for janusbuild.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Build    cmd.Build    `cmd:"" default:"withargs" help:"Configure the orchestrator and load the workspace (default)."`
	Options  cmd.Options  `cmd:""                    help:"Describe the Janus options or tokenize a command line."`
	Manifest cmd.Manifest `cmd:""                    help:"Load a project manifest and print its reference graph."`
}

// Run parses args and executes the selected command.
//
// Arguments starting with a single dash are Janus options; they are joined
// into one command line for the commands and never seen by kong.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args)
}

func run(
	ctx context.Context,
	exit func(code int),
	options []kong.Option,
	args []string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.EngineRootIdentifier: pkg.EngineRoot(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kongArgs, janusArgs := splitArgs(args)

	parser, err := kong.New(&cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.Exit(exit),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.BindSingletonProvider(func() context.Context {
				return ctx
			}),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					Tree:                true,
					NoExpandSubcommands: true,
				}),
			kong.Configuration(kong.JSON, configPath(configBase+".json")),
			kong.Configuration(resolveYAML,
				configPath(configBase+".yaml"),
				configPath(configBase+".yml"),
			),
			vars,
		}, options...)...,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(kongArgs)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithCommandLine(ctx, cmdline.Join(janusArgs))
	ctx = cmd.WithTable(ctx, cmdline.NewTable())
	ctx = cmd.WithLocator(ctx, ide.NewLocator())

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
