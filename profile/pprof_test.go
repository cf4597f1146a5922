//go:build pprof

package profile

import (
	"slices"
	"testing"
)

func TestModes(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}

	for _, m := range []string{"cpu", "heap", "trace"} {
		if !slices.Contains(modes, m) {
			t.Errorf("Modes() missing %q", m)
		}
	}
}

func TestSettings(t *testing.T) {
	if got := settings(Profiler{Mode: "nope"}); got != nil {
		t.Errorf("settings(unknown) = %d options, want nil", len(got))
	}

	base := len(settings(Profiler{Mode: "cpu"}))
	full := len(settings(Profiler{Mode: "cpu", Path: t.TempDir(), Quiet: true}))

	if full != base+2 {
		t.Errorf("settings with path and quiet = %d options, want %d", full, base+2)
	}
}
