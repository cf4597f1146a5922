package profile

import "testing"

func TestNew(t *testing.T) {
	p := New(WithMode("cpu"), WithPath("/tmp/prof"), WithQuiet(true))

	want := Profiler{Mode: "cpu", Path: "/tmp/prof", Quiet: true}
	if p != want {
		t.Errorf("New() = %+v, want %+v", p, want)
	}
}

func TestOptionOrder(t *testing.T) {
	p := New(WithMode("cpu"), WithMode("heap"))
	if p.Mode != "heap" {
		t.Errorf("Mode = %q, want last option to win", p.Mode)
	}
}

func TestStartEmptyMode(t *testing.T) {
	ctrl := Profiler{}.Start()
	if _, ok := ctrl.(ignore); !ok {
		t.Fatalf("Start() with empty mode = %T, want ignore", ctrl)
	}

	ctrl.Stop()
}

func TestStartUnknownMode(t *testing.T) {
	ctrl := New(WithMode("bogus"), WithPath(t.TempDir())).Start()
	if _, ok := ctrl.(ignore); !ok {
		t.Fatalf("Start() with unknown mode = %T, want ignore", ctrl)
	}

	ctrl.Stop()
}
