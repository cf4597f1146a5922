package project

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/ardnew/janusbuild/log"
	"github.com/ardnew/janusbuild/pkg"
)

// Reference path macros.
const (
	EngineMacro  = "$(EnginePath)"
	ProjectMacro = "$(ProjectPath)"
)

// FileReader reads whole manifest files.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// ReaderFunc adapts a function to [FileReader].
type ReaderFunc func(name string) ([]byte, error)

// ReadFile calls f(name).
func (f ReaderFunc) ReadFile(name string) ([]byte, error) { return f(name) }

// Loader loads manifests and the manifests they reference, keeping every
// loaded manifest for its lifetime. A Loader is safe for concurrent use;
// concurrent loads are serialized.
type Loader struct {
	mu    sync.Mutex
	cache map[string]*Manifest
	cfg   config
}

type config struct {
	engineRoot    string
	workDir       string
	reader        FileReader
	logger        log.Logger
	engineVersion *semver.Version
}

// Option configures a [Loader].
type Option func(config) config

// WithEngineRoot sets the directory that $(EnginePath) resolves to.
// The default is [pkg.EngineRoot].
func WithEngineRoot(dir string) Option {
	return func(c config) config {
		c.engineRoot = dir

		return c
	}
}

// WithWorkingDir sets the directory relative paths resolve against.
// The default is the process working directory.
func WithWorkingDir(dir string) Option {
	return func(c config) config {
		c.workDir = dir

		return c
	}
}

// WithReader replaces the file reader, which defaults to [os.ReadFile].
func WithReader(r FileReader) Option {
	return func(c config) config {
		if r != nil {
			c.reader = r
		}

		return c
	}
}

// WithLogger sets the logger for load progress and warnings.
// The default is the package default logger of [log].
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}

// WithEngineVersion sets the running engine version that manifests'
// MinEngineVersion is checked against. Invalid text disables the check.
func WithEngineVersion(v string) Option {
	return func(c config) config {
		c.engineVersion, _ = semver.NewVersion(v)

		return c
	}
}

// NewLoader returns an empty loader.
func NewLoader(opts ...Option) *Loader {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg := config{
		workDir: wd,
		reader:  ReaderFunc(os.ReadFile),
		logger:  log.Default(),
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	if cfg.engineRoot == "" {
		cfg.engineRoot = pkg.EngineRoot()
	}

	cfg.workDir = pkg.Canonical(wd, cfg.workDir)
	cfg.engineRoot = pkg.Canonical(cfg.workDir, cfg.engineRoot)

	return &Loader{
		cache: make(map[string]*Manifest),
		cfg:   cfg,
	}
}

// EngineRoot returns the directory $(EnginePath) resolves to.
func (l *Loader) EngineRoot() string { return l.cfg.engineRoot }

// WorkingDir returns the directory relative paths resolve against.
func (l *Loader) WorkingDir() string { return l.cfg.workDir }

// Load returns the manifest at path with all of its references loaded.
//
// A manifest already loaded under the same canonical path is returned as is,
// without reading the file again. On any failure nothing from this call is
// kept and the returned error is a [*LoadError]; failures of referenced
// manifests also match [ErrReference], and a manifest that references itself
// through any chain fails with [ErrReferenceCycle].
func (l *Loader) Load(path string) (*Manifest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	staged := make(map[string]*Manifest)

	m, err := l.load(path, nil, staged)
	if err != nil {
		return nil, err
	}

	// Commit only complete graphs.
	for k, v := range staged {
		l.cache[k] = v
	}

	return m, nil
}

// Cached returns the manifest already loaded for path, if any.
func (l *Loader) Cached(path string) (*Manifest, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.cache[pkg.Canonical(l.cfg.workDir, path)]

	return m, ok
}

// Len returns the number of cached manifests.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.cache)
}

// Resolve returns the canonical path a reference name from a manifest in
// folder refers to.
func (l *Loader) Resolve(name, folder string) string {
	switch {
	case strings.HasPrefix(name, EngineMacro):
		name = filepath.Join(l.cfg.engineRoot, trimSeparators(name[len(EngineMacro):]))
	case strings.HasPrefix(name, ProjectMacro):
		name = filepath.Join(folder, trimSeparators(name[len(ProjectMacro):]))
	}

	// Absolute names stay as they are; anything else is relative to the
	// working directory.
	return pkg.Canonical(l.cfg.workDir, name)
}

// load must be called with l.mu held. chain holds the canonical paths of the
// manifests currently being loaded, outermost first.
func (l *Loader) load(path string, chain []string, staged map[string]*Manifest) (*Manifest, error) {
	key := pkg.Canonical(l.cfg.workDir, path)

	if m, ok := l.cache[key]; ok {
		return m, nil
	}

	if m, ok := staged[key]; ok {
		return m, nil
	}

	if i := slices.Index(chain, key); i >= 0 {
		cycle := append(slices.Clone(chain[i:]), key)

		return nil, &LoadError{
			Path: key,
			Err: ErrReferenceCycle.With(
				slog.String("chain", strings.Join(cycle, " -> ")),
			),
		}
	}

	l.cfg.logger.Debug("loading project file", slog.String("path", key))

	m, err := l.decode(key)
	if err != nil {
		return nil, l.fail(key, err)
	}

	chain = append(chain, key)

	for _, ref := range m.References {
		target := l.Resolve(ref.Name, m.FolderPath)

		child, err := l.load(target, chain, staged)
		if err != nil {
			return nil, l.fail(key, ErrReference.Wrap(err).With(
				slog.String("reference", ref.Name),
			))
		}

		ref.Project = child
	}

	l.checkEngineVersion(m)

	l.cfg.logger.Debug("loaded project",
		slog.String("name", m.Name),
		slog.String("version", m.Version.String()),
	)

	staged[key] = m

	return m, nil
}

// decode reads and validates the manifest file at the canonical path key.
// References are returned unresolved.
func (l *Loader) decode(key string) (*Manifest, error) {
	data, err := l.cfg.reader.ReadFile(key)
	if err != nil {
		return nil, ErrManifestIO.Wrap(err)
	}

	var f manifestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, ErrManifestSchema.Wrap(err)
	}

	if f.Name == "" {
		return nil, ErrManifestSchema.Wrap(errors.New("missing project name"))
	}

	m := &Manifest{
		Name:             f.Name,
		Path:             key,
		FolderPath:       filepath.Dir(key),
		Version:          DefaultVersion,
		Company:          f.Company,
		Copyright:        f.Copyright,
		GameTarget:       f.GameTarget,
		EditorTarget:     f.EditorTarget,
		References:       make([]*Reference, 0, len(f.References)),
		MinEngineVersion: f.MinEngineVersion,
	}

	if f.Version != nil {
		m.Version = f.Version.Normalize()
	}

	for i, ref := range f.References {
		if ref.Name == "" {
			return nil, ErrManifestSchema.Wrap(errors.New("reference has no name")).
				With(slog.Int("index", i))
		}

		m.References = append(m.References, &Reference{Name: ref.Name})
	}

	return m, nil
}

func (l *Loader) fail(key string, err error) error {
	lerr := &LoadError{Path: key, Err: err}
	l.cfg.logger.Error("failed to load project", slog.String("path", key))

	return lerr
}

// checkEngineVersion warns when m requires a newer engine than the one
// configured with [WithEngineVersion].
func (l *Loader) checkEngineVersion(m *Manifest) {
	if m.MinEngineVersion == nil || l.cfg.engineVersion == nil {
		return
	}

	c, err := semver.NewConstraint(">= " + m.MinEngineVersion.Semver().String())
	if err != nil {
		return
	}

	if !c.Check(l.cfg.engineVersion) {
		l.cfg.logger.Warn("project requires a newer engine",
			slog.String("project", m.Name),
			slog.String("required", m.MinEngineVersion.String()),
			slog.String("engine", l.cfg.engineVersion.String()),
		)
	}
}

func trimSeparators(s string) string {
	return strings.TrimLeft(s, `/\`)
}
