package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/janusbuild/project"
)

func runManifest(t *testing.T, m *Manifest) (string, error) {
	t.Helper()
	captureLog(t)

	var out bytes.Buffer

	err := m.Run(testContext(t, &out, ""))

	return out.String(), err
}

func TestManifestTree(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, gameWorkspace)

	out, err := runManifest(t, &Manifest{Path: dir, EngineRoot: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("tree has %d lines, want 2:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "Game 1.2 ") {
		t.Errorf("root line = %q, want Game first", lines[0])
	}

	if !strings.Contains(lines[1], "Lib 2.0.1 ") {
		t.Errorf("child line = %q, want Lib", lines[1])
	}
}

func TestManifestJSON(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, gameWorkspace)

	out, err := runManifest(t, &Manifest{
		Path:       filepath.Join(dir, "Game.janusproj"),
		EngineRoot: dir,
		Format:     "json",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got manifestView
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := manifestView{
		Name:    "Game",
		Version: "1.2",
		Path:    filepath.Join(dir, "Game.janusproj"),
		Company: "Acme",
		References: []*manifestView{{
			Name:    "Lib",
			Version: "2.0.1",
			Path:    filepath.Join(dir, "Lib", "Lib.janusproj"),
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestYAML(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, gameWorkspace)

	out, err := runManifest(t, &Manifest{Path: dir, EngineRoot: dir, Format: "yaml"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got manifestView
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	if got.Name != "Game" || len(got.References) != 1 || got.References[0].Name != "Lib" {
		t.Errorf("YAML graph = %+v", got)
	}
}

func TestManifestErrors(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		path   string
		target error
	}{
		{"no project", map[string]string{"a.txt": ""}, "", project.ErrNoProject},
		{"missing path", nil, "nope", project.ErrManifestIO},
		{"bad schema", map[string]string{"Game.janusproj": `{"Name": 5}`}, "Game.janusproj", project.ErrManifestSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			_, err := runManifest(t, &Manifest{Path: filepath.Join(dir, tt.path), EngineRoot: dir})
			if !errors.Is(err, tt.target) {
				t.Fatalf("Run() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestWriteManifestUnknownFormat(t *testing.T) {
	err := writeManifest(&bytes.Buffer{}, "xml", &project.Manifest{Name: "Game"})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("writeManifest(xml) error = %v, want %v", err, ErrUnknownFormat)
	}
}
