package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/janusbuild/log"
	"github.com/ardnew/janusbuild/pkg"
)

func TestMain(m *testing.M) {
	// Keep config and cache directories out of the real home directory.
	home, err := os.MkdirTemp("", pkg.Name+"-cli-test-*")
	if err != nil {
		panic(err)
	}

	for key, dir := range map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": filepath.Join(home, "config"),
		"XDG_CACHE_HOME":  filepath.Join(home, "cache"),
	} {
		os.Setenv(key, dir)
	}

	code := m.Run()

	os.RemoveAll(home)
	os.Exit(code)
}

// runCLI runs args and returns what the commands wrote. The default logger
// is restored afterward.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := log.Default()
	log.SetDefault(log.Make(&bytes.Buffer{}))
	t.Cleanup(func() { log.SetDefault(prev) })

	var out bytes.Buffer

	err := run(t.Context(), func(code int) {
		t.Errorf("unexpected exit(%d):\n%s", code, out.String())
	}, []kong.Option{kong.Writers(&out, &out)}, args)

	return out.String(), err
}

func TestRunOptionsParseFlag(t *testing.T) {
	out, err := runCLI(t, "options", "--parse=-build -platform=Win64")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, want := range []string{"build (bool)", "platform ([]string)", "Win64"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRoutesJanusArgs(t *testing.T) {
	out, err := runCLI(t, "-maxConcurrency=4", "options", `-workspace=C:\My Game`)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, want := range []string{"maxConcurrency (int)", "workspace (string)", `C:\My Game`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDefaultCommandHelp(t *testing.T) {
	out, err := runCLI(t, "-help")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out, "Usage: "+pkg.Name) {
		t.Errorf("default command did not print help:\n%s", out)
	}
}

func TestRunConfigFile(t *testing.T) {
	path := configPath(configBase + ".yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("parse: -rebuild\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(path) })

	out, err := runCLI(t, "options")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out, "rebuild (bool)") {
		t.Errorf("config file value not applied:\n%s", out)
	}

	// Flags override the config file.
	out, err = runCLI(t, "options", "--parse=-clean")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if strings.Contains(out, "rebuild") || !strings.Contains(out, "clean (bool)") {
		t.Errorf("flag did not override config file:\n%s", out)
	}
}

func TestRunManifest(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "Game"+pkg.ManifestExt), []byte(`{"Name": "Game"}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "manifest", "--format=json", dir)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out, `"name": "Game"`) {
		t.Errorf("manifest output:\n%s", out)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	var out bytes.Buffer

	err := run(t.Context(), func(int) {}, []kong.Option{kong.Writers(&out, &out)}, []string{"bogus"})
	if err == nil {
		t.Fatal("run(bogus) succeeded, want error")
	}
}
