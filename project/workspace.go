package project

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/janusbuild/pkg"
)

// FindWorkspaceManifest returns the path of the single manifest file directly
// inside root. It fails with [ErrNoProject] when there is none and with
// [ErrTooManyProjects] when there is more than one.
func FindWorkspaceManifest(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", ErrManifestIO.Wrap(err).With(slog.String("workspace", root))
	}

	var found []string

	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), pkg.ManifestExt) {
			found = append(found, filepath.Join(root, e.Name()))
		}
	}

	switch len(found) {
	case 0:
		return "", ErrNoProject.With(slog.String("workspace", root))
	case 1:
		return found[0], nil
	default:
		return "", ErrTooManyProjects.With(
			slog.String("workspace", root),
			slog.String("files", strings.Join(found, ", ")),
		)
	}
}

// LoadWorkspace loads the single manifest in the loader's working directory.
func (l *Loader) LoadWorkspace() (*Manifest, error) {
	path, err := FindWorkspaceManifest(l.cfg.workDir)
	if err != nil {
		return nil, err
	}

	return l.Load(path)
}
