package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/janusbuild/pkg"
)

// configBase is the base name of the config files; kong reads
// configBase+".yaml" and configBase+".json".
const configBase = "config"

var defaultDirMode os.FileMode = 0o700

func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return pkg.WrapError(err).With(slog.String("dir", dir))
		}
	}

	return nil
}
