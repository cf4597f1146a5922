package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/janusbuild/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"))

	logger.Info("loaded project", slog.String("name", "Game"), slog.String("version", "1.2"))
	logger.Debug("hidden below the default level")

	// Output:
	// level=INFO msg="loaded project" name=Game version=1.2
}

func ExampleLogger_With() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace),
	).With(slog.String("workspace", "Game"))

	logger.Trace("loading project file", slog.String("path", "Game.janusproj"))
	logger.Warn("missing workspace project file")

	// Output:
	// level=TRACE msg="loading project file" workspace=Game path=Game.janusproj
	// level=WARN msg="missing workspace project file" workspace=Game
}

func ExampleWithFormat() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout("none"),
		log.WithFormat(log.FormatJSON),
	)

	logger.Error("failed to load project", slog.String("path", "Lib.janusproj"))

	// Output:
	// {"level":"ERROR","msg":"failed to load project","path":"Lib.janusproj"}
}
