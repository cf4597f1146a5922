package log

import (
	"os"
	"path/filepath"

	"github.com/ardnew/janusbuild/pkg"
)

// ErrOpenFile is returned when a log file cannot be created.
var ErrOpenFile = pkg.NewError("cannot open log file")

// OpenFile truncates or creates the log file at path, creating missing
// parent directories. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, ErrOpenFile.Wrap(err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, ErrOpenFile.Wrap(err)
	}

	return f, nil
}
