package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ardnew/janusbuild/pkg"
)

// ErrVersion is returned for text that is not a valid version.
var ErrVersion = pkg.NewError("invalid version")

// Version is a dotted version with two to four components. Build and
// Revision are -1 when absent.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// DefaultVersion is assigned to manifests that declare no version.
var DefaultVersion = Version{Major: 1, Minor: 0, Build: -1, Revision: -1}

// ParseVersion parses "major.minor[.build[.revision]]". Every component must
// be a non-negative decimal integer.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Version{}, ErrVersion.Wrap(
			fmt.Errorf("%q: want 2 to 4 components, have %d", s, len(parts)))
	}

	n := [4]int{-1, -1, -1, -1}

	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || strings.HasPrefix(p, "+") {
			return Version{}, ErrVersion.Wrap(fmt.Errorf("%q: component %d %q", s, i, p))
		}

		n[i] = v
	}

	return Version{Major: n[0], Minor: n[1], Build: n[2], Revision: n[3]}, nil
}

// Normalize drops trailing zero components: a zero revision is removed, and
// then a zero build with no revision is removed as well.
//
//	1.2.3.0 → 1.2.3
//	1.2.0   → 1.2
//	1.2.0.0 → 1.2
//	1.2.0.4 → 1.2.0.4
func (v Version) Normalize() Version {
	if v.Revision == 0 {
		v.Revision = -1
	}

	if v.Build == 0 && v.Revision == -1 {
		v.Build = -1
	}

	return v
}

// String returns the dotted form, omitting absent components.
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
	if v.Build >= 0 {
		s += "." + strconv.Itoa(v.Build)
		if v.Revision >= 0 {
			s += "." + strconv.Itoa(v.Revision)
		}
	}

	return s
}

// Compare returns -1, 0 or +1 as v is less than, equal to or greater than w.
// Components are compared in order and an absent component sorts before
// any present one.
func (v Version) Compare(w Version) int {
	for _, c := range [][2]int{
		{v.Major, w.Major},
		{v.Minor, w.Minor},
		{v.Build, w.Build},
		{v.Revision, w.Revision},
	} {
		switch {
		case c[0] < c[1]:
			return -1
		case c[0] > c[1]:
			return 1
		}
	}

	return 0
}

// Semver returns v as a semantic version. The revision has no semantic
// version counterpart and is dropped.
func (v Version) Semver() *semver.Version {
	return semver.New(uint64(max(v.Major, 0)), uint64(max(v.Minor, 0)),
		uint64(max(v.Build, 0)), "", "")
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
