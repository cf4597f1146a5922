package config

import (
	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/option"
)

// Defines returns the custom defines given in opts, in source order.
//
// A define is an option whose name starts with an uppercase 'D' followed by
// at least one character and that no descriptor in r accepts. The leading
// 'D' is dropped and a non-empty value is appended after '=':
//
//	-DFOO      → FOO
//	-DFOO=1    → FOO=1
func Defines(r *option.Registry, opts []cmdline.Option) []string {
	var defines []string

	for _, opt := range opts {
		if !IsDefine(r, opt) {
			continue
		}

		define := opt.Name[1:]
		if opt.Value != "" {
			define += "=" + opt.Value
		}

		defines = append(defines, define)
	}

	return defines
}

// IsDefine reports whether opt is a custom define rather than an option of r.
func IsDefine(r *option.Registry, opt cmdline.Option) bool {
	if len(opt.Name) < 2 || opt.Name[0] != 'D' {
		return false
	}

	_, ok := r.Lookup(opt.Name)

	return !ok
}
