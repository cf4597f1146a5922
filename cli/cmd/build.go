package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/config"
	"github.com/ardnew/janusbuild/log"
	"github.com/ardnew/janusbuild/option"
	"github.com/ardnew/janusbuild/pkg"
	"github.com/ardnew/janusbuild/project"
)

// Usage is the usage line printed above the Janus option help.
const Usage = pkg.Name + " [-<option>[=<value>] ...]"

// Build configures the orchestrator from the Janus command line and loads the
// workspace project graph.
type Build struct {
	EngineRoot string `default:"${engineRoot}" help:"Engine root directory used to resolve engine-relative references." placeholder:"PATH" type:"path"`
	Options    string `help:"Additional options in Janus syntax, appended to the command line." placeholder:"TEXT"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	started := time.Now()
	text := b.commandLine(ctx)
	table := tableFrom(ctx)

	if table.Has(text, "help") {
		return writeHelp(stdout(ctx), config.Default().Registry())
	}

	cfg := config.Default()
	opts := table.Options(text)
	applyErr := cfg.Apply(opts)

	workspace, err := workingDir(cfg.Workspace)
	if err != nil {
		return err
	}

	closeLog, err := configureLog(cfg, workspace)
	if err != nil {
		return err
	}
	defer closeLog()

	defer func() {
		log.InfoContext(ctx, "done",
			slog.Duration("elapsed", time.Since(started)),
			slog.Bool("ok", err == nil),
		)
	}()

	warnUnmatched(ctx, cfg.Registry(), opts)

	if applyErr != nil {
		return applyErr
	}

	log.InfoContext(ctx, pkg.Name, slog.String("version", pkg.Version()))
	log.DebugContext(ctx, "command line", slog.String("text", text))
	log.DebugContext(ctx, "configuration", slog.Any("config", cfg))

	loader := project.NewLoader(
		project.WithWorkingDir(workspace),
		project.WithEngineRoot(b.EngineRoot),
		project.WithEngineVersion(pkg.Version()),
	)

	log.DebugContext(ctx, "paths",
		slog.String("workspace", loader.WorkingDir()),
		slog.String("engine", loader.EngineRoot()),
	)

	root, err := loader.LoadWorkspace()

	switch {
	case errors.Is(err, project.ErrNoProject):
		log.WarnContext(ctx, "missing workspace project file",
			slog.String("workspace", loader.WorkingDir()),
			slog.String("ext", pkg.ManifestExt),
		)
	case err != nil:
		return err
	default:
		logGraph(ctx, root)
	}

	b.generate(ctx, cfg)
	unsupported(ctx, cfg)

	return nil
}

// commandLine returns the Janus command line joined with the --options text.
func (b *Build) commandLine(ctx context.Context) string {
	return strings.TrimSpace(commandLineFrom(ctx) + " " + b.Options)
}

func (b *Build) generate(ctx context.Context, cfg *config.Config) {
	if !cfg.GenerateProject {
		return
	}

	log.InfoContext(ctx, "generating project files",
		slog.Any("formats", cfg.ProjectFormats()),
	)

	if !cfg.VSCode {
		return
	}

	if path, ok := locatorFrom(ctx).VSCode(); ok {
		log.InfoContext(ctx, "found Visual Studio Code", slog.String("path", path))
	} else {
		log.WarnContext(ctx, "Visual Studio Code installation not found")
	}
}

// unsupported logs the requested actions this front-end does not perform.
func unsupported(ctx context.Context, cfg *config.Config) {
	for _, a := range []struct {
		name string
		on   bool
	}{
		{"BuildDeps", cfg.BuildDeps},
		{"ReBuildDeps", cfg.ReBuildDeps},
		{"deploy", cfg.Deploy},
		{"build", cfg.Build},
		{"clean", cfg.Clean},
		{"rebuild", cfg.Rebuild},
		{"printSDKs", cfg.PrintSDKs},
	} {
		if a.on {
			log.WarnContext(ctx, "action not available", slog.String("option", a.name))
		}
	}
}

func writeHelp(w io.Writer, r *option.Registry) error {
	styles := option.Styles{}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		styles = option.DefaultStyles()
	}

	if err := styles.Help(w, r, Usage); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// workingDir returns the canonical workspace directory: dir resolved against
// the process working directory.
func workingDir(dir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", pkg.WrapError(err)
	}

	return pkg.Canonical(wd, dir), nil
}

// configureLog applies the logging options of cfg to the default logger.
// The returned func restores the previous default logger and closes the log
// file, if one was opened.
func configureLog(cfg *config.Config, workspace string) (func(), error) {
	var (
		prev    = log.Default()
		file    io.Closer
		outs    []io.Writer
		logOpts []log.Option
	)

	if cfg.ConsoleLog {
		outs = append(outs, prev.Output())
	}

	if cfg.LogFile != "" {
		f, err := log.OpenFile(pkg.Canonical(workspace, cfg.LogFile))
		if err != nil {
			return nil, err
		}

		file = f
		outs = append(outs, f)
		logOpts = append(logOpts, log.WithPretty(false))
	}

	if cfg.Verbose && prev.Level() > log.LevelDebug {
		logOpts = append(logOpts, log.WithLevel(log.LevelDebug))
	}

	log.Config(append(logOpts, log.Tee(outs...))...)

	return func() {
		log.SetDefault(prev)

		if file != nil {
			_ = file.Close()
		}
	}, nil
}

// warnUnmatched logs every option that neither matches a descriptor nor is a
// custom define, with the closest registered names.
func warnUnmatched(ctx context.Context, r *option.Registry, opts []cmdline.Option) {
	for _, opt := range option.Unmatched(r, opts) {
		if strings.EqualFold(opt.Name, "help") || config.IsDefine(r, opt) {
			continue
		}

		attrs := []slog.Attr{slog.String("option", opt.Name)}
		if s := r.Suggest(opt.Name); len(s) > 0 {
			attrs = append(attrs, slog.String("suggest", strings.Join(s, ", ")))
		}

		log.WarnContext(ctx, "unknown option", attrs...)
	}
}

func logGraph(ctx context.Context, root *project.Manifest) {
	for _, m := range root.Projects() {
		log.DebugContext(ctx, "project",
			slog.String("name", m.Name),
			slog.String("version", m.Version.String()),
			slog.String("path", m.Path),
			slog.Int("references", len(m.References)),
		)
	}
}
