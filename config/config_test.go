package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/option"
)

func TestDefault(t *testing.T) {
	c := Default()

	if !c.GenerateProject || !c.Verbose || !c.ConsoleLog {
		t.Errorf("Default() bool defaults wrong: %+v", c)
	}

	if c.MaxConcurrency != 1410 || c.ConcurrencyProcessorScale != 1.0 {
		t.Errorf("Default() concurrency = %d/%v", c.MaxConcurrency, c.ConcurrencyProcessorScale)
	}

	if c.LogFile != "Cache/Intermediate/Log.txt" ||
		c.BinariesFolder != "Binaries" ||
		c.IntermediateFolder != "Cache/Intermediate" {
		t.Errorf("Default() paths wrong: %+v", c)
	}
}

func TestConfig_Registry(t *testing.T) {
	r := Default().Registry()

	for _, name := range []string{
		"workspace", "genproject", "builddeps", "REBUILDDEPS", "deploy",
		"build", "clean", "rebuild", "printsdks", "logfile", "verbose", "log",
		"configuration", "platform", "arch", "maxConcurrency",
		"concurrencyProcessorScale", "binaries", "intermediate",
		"vs2015", "vs2017", "vs2019", "vs2022", "vscode",
	} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("Registry() missing option %q", name)
		}
	}

	d, _ := r.Lookup("maxConcurrency")
	if d.Type != (option.Type{Kind: option.KindInt}) || d.ValueHint != "<threads>" {
		t.Errorf("maxConcurrency descriptor = %+v", d)
	}
}

func TestConfig_Apply(t *testing.T) {
	c := Default()

	err := c.Apply(cmdline.Parse(
		`-genproject=false -clean -maxConcurrency=8 -logfile="" ` +
			`-platform=linux,Mac -arch=x64 -DWITH_EDITOR -DLEVEL=2 -vscode`,
	))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := Default()
	want.GenerateProject = false
	want.Clean = true
	want.MaxConcurrency = 8
	want.LogFile = ""
	want.Platforms = []string{"Linux", "Mac"}
	want.Architectures = []string{"x64"}
	want.VSCode = true
	want.Defines = []string{"WITH_EDITOR", "LEVEL=2"}

	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"vscode"}, c.ProjectFormats()); diff != "" {
		t.Errorf("ProjectFormats() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_ApplyErrors(t *testing.T) {
	c := Default()

	err := c.Apply(cmdline.Parse("-maxConcurrency=abc -platform=Amiga -verbose=false"))
	if err == nil {
		t.Fatal("Apply() expected error")
	}

	var ce *option.ConversionError
	if !errors.As(err, &ce) || ce.Option != "maxConcurrency" || ce.Value != "abc" {
		t.Errorf("Apply() error = %v, want ConversionError for maxConcurrency", err)
	}

	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("Apply() error = %v, want ErrUnknownTarget", err)
	}

	if c.MaxConcurrency != 1410 {
		t.Errorf("MaxConcurrency = %d, want default after failed conversion", c.MaxConcurrency)
	}

	if c.Verbose {
		t.Error("verbose not bound alongside failures")
	}
}

func TestDefines(t *testing.T) {
	r := Default().Registry()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"name only", "-DFOO", []string{"FOO"}},
		{"with value", "-DFOO=1", []string{"FOO=1"}},
		{"quoted value", `-DMSG="a b"`, []string{"MSG=a b"}},
		{"single D ignored", "-D", nil},
		{"lowercase d ignored", "-dFOO", nil},
		{"descriptor names excluded", "-Deploy -DFOO", []string{"FOO"}},
		{"source order", "-DB -x -DA=2", []string{"B", "A=2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Defines(r, cmdline.Parse(tt.text))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Defines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestIsDefine(t *testing.T) {
	r := Default().Registry()

	for name, want := range map[string]bool{
		"DFOO":    true,
		"D":       false,
		"dFOO":    false,
		"Deploy":  false,
		"verbose": false,
	} {
		if got := IsDefine(r, cmdline.Option{Name: name}); got != want {
			t.Errorf("IsDefine(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{
		Configurations: []string{"debug", "RELEASE"},
		Architectures:  []string{"arm64", "sparc"},
	}

	err := c.Validate()
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("Validate() error = %v, want ErrUnknownTarget", err)
	}

	if diff := cmp.Diff([]string{"Debug", "Release"}, c.Configurations); diff != "" {
		t.Errorf("Configurations mismatch (-want +got):\n%s", diff)
	}

	if c.Architectures[0] != "ARM64" || c.Architectures[1] != "sparc" {
		t.Errorf("Architectures = %v", c.Architectures)
	}
}
