package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/janusbuild/log"
	"github.com/ardnew/janusbuild/pkg"
	"github.com/ardnew/janusbuild/project"
)

// Manifest loads a project manifest with all of its references and prints
// the resulting graph.
type Manifest struct {
	Format     string `default:"tree"          enum:"tree,json,yaml" help:"Output format (${enum})."`
	EngineRoot string `default:"${engineRoot}" help:"Engine root directory used to resolve engine-relative references." placeholder:"PATH" type:"path"`

	Path string `arg:"" help:"Manifest file or workspace directory." name:"path" optional:"" type:"path"`
}

// Run executes the manifest command.
func (m *Manifest) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	path, err := m.manifestPath()
	if err != nil {
		return err
	}

	loader := project.NewLoader(
		project.WithWorkingDir(filepath.Dir(path)),
		project.WithEngineRoot(m.EngineRoot),
		project.WithEngineVersion(pkg.Version()),
	)

	root, err := loader.Load(path)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "loaded project graph",
		slog.Any("root", root),
		slog.Int("projects", loader.Len()),
	)

	return writeManifest(stdout(ctx), m.Format, root)
}

// manifestPath returns the manifest file named by m.Path, discovering the
// workspace manifest when m.Path is a directory or empty.
func (m *Manifest) manifestPath() (string, error) {
	path, err := workingDir(m.Path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", project.ErrManifestIO.Wrap(err).With(slog.String("path", path))
	}

	if info.IsDir() {
		return project.FindWorkspaceManifest(path)
	}

	return path, nil
}

func writeManifest(w io.Writer, format string, root *project.Manifest) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "", "tree":
		out = []byte(manifestTree(root).String() + "\n")
	case "json":
		out, err = json.MarshalIndent(newManifestView(root), "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(newManifestView(root))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	default:
		return ErrUnknownFormat.With(slog.String("format", format))
	}

	if _, err := w.Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// manifestView is the serialized form of a loaded project graph.
type manifestView struct {
	Name             string          `json:"name"                       yaml:"name"`
	Version          string          `json:"version"                    yaml:"version"`
	Path             string          `json:"path"                       yaml:"path"`
	Company          string          `json:"company,omitempty"          yaml:"company,omitempty"`
	Copyright        string          `json:"copyright,omitempty"        yaml:"copyright,omitempty"`
	GameTarget       string          `json:"gameTarget,omitempty"       yaml:"gameTarget,omitempty"`
	EditorTarget     string          `json:"editorTarget,omitempty"     yaml:"editorTarget,omitempty"`
	MinEngineVersion string          `json:"minEngineVersion,omitempty" yaml:"minEngineVersion,omitempty"`
	References       []*manifestView `json:"references,omitempty"       yaml:"references,omitempty"`
}

func newManifestView(m *project.Manifest) *manifestView {
	v := &manifestView{
		Name:         m.Name,
		Version:      m.Version.String(),
		Path:         m.Path,
		Company:      m.Company,
		Copyright:    m.Copyright,
		GameTarget:   m.GameTarget,
		EditorTarget: m.EditorTarget,
	}

	if m.MinEngineVersion != nil {
		v.MinEngineVersion = m.MinEngineVersion.String()
	}

	for _, ref := range m.References {
		v.References = append(v.References, newManifestView(ref.Project))
	}

	return v
}

var (
	treeRootStyle = lipgloss.NewStyle().Bold(true)
	treeEnumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	treePathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func manifestTree(m *project.Manifest) *tree.Tree {
	t := tree.Root(treeLabel(m)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle).
		RootStyle(treeRootStyle)

	for _, ref := range m.References {
		if len(ref.Project.References) == 0 {
			t.Child(treeLabel(ref.Project))

			continue
		}

		t.Child(manifestTree(ref.Project))
	}

	return t
}

func treeLabel(m *project.Manifest) string {
	return fmt.Sprintf("%s %s %s", m.Name, m.Version, treePathStyle.Render(m.Path))
}
