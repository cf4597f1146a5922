package project

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Manifest is one loaded project. Path and FolderPath are canonical.
// A Manifest is read-only once its loader returns it.
type Manifest struct {
	Name             string
	Path             string
	FolderPath       string
	Version          Version
	Company          string
	Copyright        string
	GameTarget       string
	EditorTarget     string
	References       []*Reference
	MinEngineVersion *Version
}

// Reference is an edge from a manifest to another. Name is the text as
// written in the manifest, possibly carrying a path macro.
type Reference struct {
	Name    string
	Project *Manifest
}

// String returns the project name.
func (m *Manifest) String() string { return m.Name }

// LogValue implements slog.LogValuer.
func (m *Manifest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", m.Name),
		slog.String("version", m.Version.String()),
		slog.String("path", m.Path),
		slog.Int("references", len(m.References)),
	)
}

// Projects returns m and every project reachable from it, each once, in
// depth-first pre-order.
func (m *Manifest) Projects() []*Manifest {
	seen := make(map[*Manifest]bool)

	var out []*Manifest

	var walk func(*Manifest)
	walk = func(p *Manifest) {
		if p == nil || seen[p] {
			return
		}

		seen[p] = true
		out = append(out, p)

		for _, ref := range p.References {
			walk(ref.Project)
		}
	}

	walk(m)

	return out
}

// Find returns the reachable project with the given name, ignoring case.
func (m *Manifest) Find(name string) (*Manifest, bool) {
	all := m.Projects()

	i := slices.IndexFunc(all, func(p *Manifest) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return nil, false
	}

	return all[i], true
}

// Save writes m back to its Path in manifest format.
func (m *Manifest) Save() error {
	data, err := m.MarshalJSON()
	if err != nil {
		return ErrManifestIO.Wrap(err)
	}

	if err := os.WriteFile(m.Path, data, 0o644); err != nil {
		return &LoadError{Path: m.Path, Err: ErrManifestIO.Wrap(err)}
	}

	return nil
}

// MarshalJSON encodes m in manifest format. Resolved paths and projects
// are not written; references keep their original names.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	f := manifestFile{
		Name:             m.Name,
		Version:          &m.Version,
		Company:          m.Company,
		Copyright:        m.Copyright,
		GameTarget:       m.GameTarget,
		EditorTarget:     m.EditorTarget,
		References:       make([]referenceFile, len(m.References)),
		MinEngineVersion: m.MinEngineVersion,
	}

	for i, ref := range m.References {
		f.References[i] = referenceFile{Name: ref.Name}
	}

	return json.MarshalIndent(f, "", "  ")
}

// manifestFile is the on-disk form of a manifest. Field names match
// case-insensitively when decoding.
type manifestFile struct {
	Name             string
	Version          *Version `json:",omitempty"`
	Company          string
	Copyright        string
	GameTarget       string          `json:",omitempty"`
	EditorTarget     string          `json:",omitempty"`
	References       []referenceFile `json:",omitempty"`
	MinEngineVersion *Version        `json:",omitempty"`
}

type referenceFile struct {
	Name string
}
