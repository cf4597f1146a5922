package project

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "1.2", want: Version{1, 2, -1, -1}},
		{in: "1.2.3", want: Version{1, 2, 3, -1}},
		{in: "1.2.3.4", want: Version{1, 2, 3, 4}},
		{in: " 0.0 ", want: Version{0, 0, -1, -1}},
		{in: "1", wantErr: true},
		{in: "1.2.3.4.5", wantErr: true},
		{in: "1.x", wantErr: true},
		{in: "1.-2", wantErr: true},
		{in: "1.+2", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrVersion) {
					t.Errorf("ParseVersion(%q) error = %v, want ErrVersion", tt.in, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseVersion(%q) error = %v", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersion_Normalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2", "1.2"},
		{"1.2.3", "1.2.3"},
		{"1.2.3.4", "1.2.3.4"},
		{"1.2.0", "1.2"},
		{"1.2.3.0", "1.2.3"},
		{"1.2.0.0", "1.2"},
		{"1.2.0.4", "1.2.0.4"},
		{"0.0.0.0", "0.0"},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.in)
		if err != nil {
			t.Fatalf("ParseVersion(%q) error = %v", tt.in, err)
		}

		if got := v.Normalize().String(); got != tt.want {
			t.Errorf("Normalize(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2", "1.2", 0},
		{"1.2", "1.2.0", -1},
		{"1.10", "1.9", 1},
		{"2.0.0.1", "2.0.0", 1},
		{"0.9.9", "1.0", -1},
	}

	for _, tt := range tests {
		a, _ := ParseVersion(tt.a)
		b, _ := ParseVersion(tt.b)

		if got := a.Compare(b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersion_Semver(t *testing.T) {
	v := Version{1, 4, -1, -1}
	if got := v.Semver().String(); got != "1.4.0" {
		t.Errorf("Semver() = %s, want 1.4.0", got)
	}

	v = Version{2, 0, 7, 9}
	if got := v.Semver().String(); got != "2.0.7" {
		t.Errorf("Semver() = %s, want 2.0.7", got)
	}
}

func TestVersion_Text(t *testing.T) {
	var v Version
	if err := v.UnmarshalText([]byte("3.1.4")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}

	b, err := v.MarshalText()
	if err != nil || string(b) != "3.1.4" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}

	if err := v.UnmarshalText([]byte("three")); err == nil {
		t.Error("UnmarshalText(three) expected error")
	}
}
