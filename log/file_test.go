package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cache", "Intermediate", "Log.txt")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	Make(f, WithTimeLayout("none")).Info("to file")

	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestOpenFile_Error(t *testing.T) {
	dir := t.TempDir()

	// A regular file where a directory is needed.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFile(filepath.Join(blocker, "Log.txt")); err == nil {
		t.Error("OpenFile() expected error beneath a regular file")
	}
}
