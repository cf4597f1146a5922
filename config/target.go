package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/janusbuild/pkg"
)

// Known build targets.
var (
	Configurations = []string{"Debug", "Development", "Release"}
	Platforms      = []string{
		"Windows", "XboxOne", "Linux", "PS4", "PS5", "Android", "Switch", "Mac",
	}
	Architectures = []string{"x64", "x86", "ARM", "ARM64"}
)

// ErrUnknownTarget is returned for a configuration, platform or architecture
// that is not one of the known build targets.
var ErrUnknownTarget = pkg.NewError("unknown build target")

// Validate checks the selected build targets against the known sets and
// rewrites each to its canonical spelling.
func (c *Config) Validate() error {
	return errors.Join(
		canonicalize("configuration", c.Configurations, Configurations),
		canonicalize("platform", c.Platforms, Platforms),
		canonicalize("arch", c.Architectures, Architectures),
	)
}

func canonicalize(option string, selected, known []string) error {
	var errs []error

	for i, s := range selected {
		j := slices.IndexFunc(known, func(k string) bool {
			return strings.EqualFold(s, k)
		})
		if j >= 0 {
			selected[i] = known[j]

			continue
		}

		errs = append(errs, ErrUnknownTarget.
			Wrap(fmt.Errorf("-%s=%s", option, s)).
			With(
				slog.String("option", option),
				slog.String("value", s),
				slog.String("allowed", strings.Join(known, ",")),
			))
	}

	return errors.Join(errs...)
}
