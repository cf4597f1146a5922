package cmdline

import (
	"slices"
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"-a=1 -b=2",
		`-name="quoted value"`,
		`"-wholequote=1"`,
		`-a='x`,
		`"`,
		`"-`,
		"--",
		"=",
		"-=",
		`-a="`,
		"/x=/y -z",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		first := Parse(text)
		second := Parse(text)

		if !slices.Equal(first, second) {
			t.Fatalf("Parse(%q) is not deterministic", text)
		}

		for _, opt := range first {
			if !opt.Assigned && opt.Value != "" {
				t.Fatalf("Parse(%q): unassigned option %+v carries a value", text, opt)
			}
		}
	})
}
