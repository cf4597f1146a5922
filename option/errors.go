package option

import (
	"fmt"
	"log/slog"

	"github.com/ardnew/janusbuild/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrInvalidBool      = pkg.NewError("invalid boolean value")
	ErrInvalidNumber    = pkg.NewError("invalid number value")
	ErrUnsupportedType  = pkg.NewError("unsupported option type")
	ErrNilTarget        = pkg.NewError("option has no binding target")
	ErrTargetType       = pkg.NewError("value does not match binding target")
	ErrEmptyName        = pkg.NewError("option name is empty")
	ErrDuplicateOption  = pkg.NewError("duplicate option name")
)

// ConversionError reports option text that could not be converted to the
// type declared by its descriptor.
type ConversionError struct {
	Option string // descriptor name
	Value  string // raw option text
	Type   Type
	Err    error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert option %q value %q to type %s: %v",
		e.Option, e.Value, e.Type, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ConversionError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *ConversionError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "conversion failed"),
		slog.String("option", e.Option),
		slog.String("value", e.Value),
		typeAttr(e.Type),
		slog.String("cause", fmt.Sprint(e.Err)),
	)
}

// TargetError reports a converted value that could not be stored into the
// descriptor's binding target.
type TargetError struct {
	Descriptor string // descriptor name
	Option     string // option name as supplied on the command line
	Value      string
	Err        error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	return fmt.Sprintf("failed to set option %q with argument %q to value %q: %v",
		e.Descriptor, e.Option, e.Value, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TargetError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *TargetError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "bind target failed"),
		slog.String("descriptor", e.Descriptor),
		slog.String("option", e.Option),
		slog.String("value", e.Value),
		slog.String("cause", fmt.Sprint(e.Err)),
	)
}

func typeAttr(t Type) slog.Attr {
	return slog.String("type", t.String())
}
