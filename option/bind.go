package option

import (
	"errors"

	"github.com/ardnew/janusbuild/cmdline"
)

// Bind writes the values of opts into the targets of every descriptor in r.
//
// For each descriptor the first option with a case-insensitively equal name
// is used. Absent options leave the target untouched. A bare flag, or an
// empty value, binds true to a [Bool] descriptor.
//
// Descriptors bind independently. Every failure is collected and returned
// with [errors.Join]; use [errors.As] to find each [ConversionError] or
// [TargetError].
func Bind(r *Registry, opts []cmdline.Option) error {
	var errs []error

	for d := range r.All() {
		opt, presence := cmdline.Lookup(opts, d.Name)
		if err := bind(d, opt, presence); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func bind(d Descriptor, opt cmdline.Option, presence cmdline.Presence) error {
	if presence == cmdline.Absent {
		return nil
	}

	var value any

	if d.Type.Kind == KindBool && opt.Value == "" {
		value = true
	} else {
		v, err := d.Convert(opt.Value)
		if err != nil {
			return &ConversionError{
				Option: d.Name,
				Value:  opt.Value,
				Type:   d.Type,
				Err:    err,
			}
		}

		value = v
	}

	if err := d.Set(value); err != nil {
		return &TargetError{
			Descriptor: d.Name,
			Option:     opt.Name,
			Value:      opt.Value,
			Err:        err,
		}
	}

	return nil
}

// Unmatched returns the options in opts that no descriptor in r accepts,
// in source order.
func Unmatched(r *Registry, opts []cmdline.Option) []cmdline.Option {
	var out []cmdline.Option

	for _, opt := range opts {
		if _, ok := r.Lookup(opt.Name); !ok {
			out = append(out, opt)
		}
	}

	return out
}
