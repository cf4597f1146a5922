package project

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/janusbuild/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrManifestIO      = pkg.NewError("cannot read manifest")
	ErrManifestSchema  = pkg.NewError("invalid manifest")
	ErrReference       = pkg.NewError("cannot load referenced project")
	ErrReferenceCycle  = pkg.NewError("reference cycle")
	ErrTooManyProjects = pkg.NewError("too many project files, don't know which to pick")
	ErrNoProject       = pkg.NewError("missing project file")
)

// LoadError reports a manifest that failed to load. When a referenced
// manifest fails, the referencing manifest's LoadError wraps the
// reference's LoadError.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load project %q: %v", e.Path, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LoadError) Unwrap() error { return e.Err }

// Failed returns the path of the manifest that caused the failure, which is
// the innermost LoadError in the chain.
func (e *LoadError) Failed() string {
	path := e.Path

	for err := e.Err; err != nil; {
		var inner *LoadError
		if !errors.As(err, &inner) {
			break
		}

		path, err = inner.Path, inner.Err
	}

	return path
}

// LogValue implements slog.LogValuer.
func (e *LoadError) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("path", e.Path)}

	if failed := e.Failed(); failed != e.Path {
		attrs = append(attrs, slog.String("failed", failed))
	}

	if lv, ok := e.Err.(slog.LogValuer); ok {
		attrs = append(attrs, slog.Any("cause", lv))
	} else if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}
