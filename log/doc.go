// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are immutable values configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339"),
//		log.WithCaller(true))
//
//	logger.Info("loaded project", slog.String("name", name))
//
// Every logging method takes [slog.Attr] values rather than alternating
// key/value arguments. Errors that implement [slog.LogValuer] are expanded
// into their structured fields.
//
// # Default Logger
//
// The package-level functions ([Info], [Warn], ...) write through a default
// logger that [Config] reconfigures in place:
//
//	file, _ := log.OpenFile("Cache/Intermediate/Log.txt")
//	log.Config(log.Tee(os.Stdout, file), log.WithLevel(log.LevelDebug))
//
// # Levels and Formats
//
// Five levels are defined, from [LevelTrace] to [LevelError]. Output is
// either [FormatText] or [FormatJSON]; [WithPretty] colorizes either one
// for terminals. Both [Level] and [Format] implement
// [encoding.TextUnmarshaler] so they can be decoded directly from flags and
// configuration files.
package log
