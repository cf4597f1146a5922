// Package ide finds installed development environments that project files
// can be generated for.
package ide

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ardnew/janusbuild/log"
)

// Locator looks up installations once and remembers the result for its
// lifetime. A Locator is safe for concurrent use.
type Locator struct {
	cfg config

	vscode struct {
		once sync.Once
		path string
	}
}

type config struct {
	goos     string
	home     string
	stat     func(string) (fs.FileInfo, error)
	registry func() []string
	logger   *log.Logger
}

// Option configures a [Locator].
type Option func(config) config

// WithGOOS overrides the operating system whose install locations are
// searched.
func WithGOOS(goos string) Option {
	return func(c config) config {
		c.goos = goos

		return c
	}
}

// WithHome overrides the user home directory.
func WithHome(dir string) Option {
	return func(c config) config {
		c.home = dir

		return c
	}
}

// WithStat replaces the function used to check candidate paths.
func WithStat(stat func(string) (fs.FileInfo, error)) Option {
	return func(c config) config {
		if stat != nil {
			c.stat = stat
		}

		return c
	}
}

// WithLogger sets the logger that reports found installations. The default
// is the package default logger of [log] at the time of the search.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = &l

		return c
	}
}

// NewLocator returns a locator for the running system.
func NewLocator(opts ...Option) *Locator {
	home, _ := os.UserHomeDir()

	cfg := config{
		goos:     runtime.GOOS,
		home:     home,
		stat:     os.Stat,
		registry: vscodeRegistryPaths,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return &Locator{cfg: cfg}
}

// VSCode returns the path of the Visual Studio Code installation, or false
// if none was found. The search runs on the first call only.
func (l *Locator) VSCode() (string, bool) {
	l.vscode.once.Do(func() {
		l.vscode.path = l.find(l.vscodeCandidates())
		if l.vscode.path != "" {
			l.cfg.log().Debug("found VS Code", slog.String("path", l.vscode.path))
		}
	})

	return l.vscode.path, l.vscode.path != ""
}

func (c config) log() log.Logger {
	if c.logger == nil {
		return log.Default()
	}

	return *c.logger
}

type candidate struct {
	path string
	dir  bool
}

func (l *Locator) vscodeCandidates() []candidate {
	switch l.cfg.goos {
	case "windows":
		var out []candidate
		for _, p := range l.cfg.registry() {
			out = append(out, candidate{path: p})
		}

		return out

	case "linux":
		return []candidate{{path: "/usr/bin/code"}}

	case "darwin":
		return []candidate{
			{path: "/Applications/Visual Studio Code.app", dir: true},
			{path: filepath.Join(l.cfg.home, "Visual Studio Code.app"), dir: true},
			{path: filepath.Join(l.cfg.home, "Downloads", "Visual Studio Code.app"), dir: true},
		}
	}

	return nil
}

// find returns the first candidate that exists with the expected type.
func (l *Locator) find(cands []candidate) string {
	for _, c := range cands {
		fi, err := l.cfg.stat(c.path)
		if err != nil || fi.IsDir() != c.dir {
			continue
		}

		return c.path
	}

	return ""
}
