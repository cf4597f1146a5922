package cli

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/ardnew/janusbuild/log"
)

// logFormat and logLevel reconfigure the default logger as soon as kong
// decodes them, so messages logged while parsing already use them.
type logFormat log.Format

func (f *logFormat) UnmarshalText(text []byte) error {
	if err := (*log.Format)(f).UnmarshalText(text); err != nil {
		return err
	}

	log.Config(log.WithFormat(log.Format(*f)))

	return nil
}

func (f logFormat) String() string { return log.Format(f).String() }

type logLevel log.Level

func (l *logLevel) UnmarshalText(text []byte) error {
	if err := (*log.Level)(l).UnmarshalText(text); err != nil {
		return err
	}

	log.Config(log.WithLevel(log.Level(*l)))

	return nil
}

func (l logLevel) String() string { return log.Level(l).String() }

type logConfig struct {
	Level      logLevel  `default:"${logLevelDefault}"  enum:"${logLevelEnum}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"${logFormatDefault}" enum:"${logFormatEnum}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"TimeOnly"                                    help:"Set timestamp format, by name or Go layout."`
	Caller     bool      `default:"false"                                       help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"${logPretty}"                                help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelDefault":  log.DefaultLevel.String(),
		"logLevelEnum":     strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatDefault": log.DefaultFormat.String(),
		"logFormatEnum":    strings.Join(slices.Collect(log.Formats()), ","),
		"logPretty":        strconv.FormatBool(isatty.IsTerminal(os.Stdout.Fd())),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.Level(f.Level)),
		log.WithFormat(log.Format(f.Format)),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", log.Level(f.Level).String()),
		slog.String("format", log.Format(f.Format).String()),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}
