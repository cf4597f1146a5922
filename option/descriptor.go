package option

import (
	"fmt"
	"log/slog"
)

// Descriptor maps one external option name to a typed configuration field.
// Descriptors are values and never change once constructed.
type Descriptor struct {
	Name        string
	ValueHint   string
	Description string
	Type        Type

	set func(any) error
}

// Attr customizes a [Descriptor] during construction.
type Attr func(Descriptor) Descriptor

// Hint sets the placeholder shown after '=' in help output.
func Hint(hint string) Attr {
	return func(d Descriptor) Descriptor {
		d.ValueHint = hint

		return d
	}
}

// Describe sets the descriptor's human-readable description.
// Lines are separated by '\n'.
func Describe(text string) Attr {
	return func(d Descriptor) Descriptor {
		d.Description = text

		return d
	}
}

// Bool binds a boolean field. A bare flag sets it to true.
func Bool(p *bool, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindBool}, attrs)
}

// Int binds an int field.
func Int(p *int, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindInt}, attrs)
}

// Float binds a float64 field.
func Float(p *float64, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindFloat}, attrs)
}

// String binds a string field.
func String(p *string, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindString}, attrs)
}

// Strings binds a string slice from a comma-separated value.
func Strings(p *[]string, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindArray, Elem: KindString}, attrs)
}

// Ints binds an int slice from a comma-separated value.
func Ints(p *[]int, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindArray, Elem: KindInt}, attrs)
}

// Floats binds a float64 slice from a comma-separated value.
func Floats(p *[]float64, name string, attrs ...Attr) Descriptor {
	return describe(p, name, Type{Kind: KindArray, Elem: KindFloat}, attrs)
}

func describe[T any](p *T, name string, t Type, attrs []Attr) Descriptor {
	d := Descriptor{Name: name, Type: t, set: setter(p)}
	for _, attr := range attrs {
		d = attr(d)
	}

	return d
}

// setter returns the closure that stores a converted value into p.
func setter[T any](p *T) func(any) error {
	return func(v any) error {
		if p == nil {
			return ErrNilTarget
		}

		x, ok := v.(T)
		if !ok {
			return ErrTargetType.With(
				slog.String("have", fmt.Sprintf("%T", v)),
				slog.String("want", fmt.Sprintf("%T", *p)),
			)
		}

		*p = x

		return nil
	}
}

// Set stores v into the descriptor's binding target.
func (d Descriptor) Set(v any) error {
	if d.set == nil {
		return ErrNilTarget
	}

	return d.set(v)
}

// Convert turns option text into a value of the descriptor's type.
func (d Descriptor) Convert(text string) (any, error) {
	return convert(d.Type, text)
}

// LogValue implements slog.LogValuer.
func (d Descriptor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", d.Name),
		typeAttr(d.Type),
	)
}
