package option

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the value type a descriptor converts option text into.
type Kind int

const (
	KindInvalid Kind = iota // invalid
	KindBool                // bool
	KindInt                 // int
	KindFloat               // float
	KindString              // string
	KindArray               // array
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Type is the full value type of a descriptor. Elem is the element kind of an
// [KindArray] and [KindInvalid] otherwise.
type Type struct {
	Kind Kind
	Elem Kind
}

// String returns the Go-like spelling of the type, e.g. "int" or "[]string".
func (t Type) String() string {
	if t.Kind == KindArray {
		return "[]" + t.Elem.String()
	}

	return t.Kind.String()
}

// convert turns option text into a value of type t.
// Arrays are split on ',' and every part is trimmed and converted on its own.
func convert(t Type, text string) (any, error) {
	switch t.Kind {
	case KindBool:
		return parseBool(text)
	case KindInt:
		return parseInt(text)
	case KindFloat:
		return parseFloat(text)
	case KindString:
		return parseString(text)
	case KindArray:
		switch t.Elem {
		case KindBool:
			return convertEach(text, parseBool)
		case KindInt:
			return convertEach(text, parseInt)
		case KindFloat:
			return convertEach(text, parseFloat)
		case KindString:
			return convertEach(text, parseString)
		}
	}

	return nil, ErrUnsupportedType.With(typeAttr(t))
}

func convertEach[T any](text string, conv func(string) (T, error)) ([]T, error) {
	parts := strings.Split(text, ",")
	out := make([]T, len(parts))

	for i, part := range parts {
		v, err := conv(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "0", "f", "false", "no", "off":
		return false, nil
	}

	return false, ErrInvalidBool.Wrap(strconv.ErrSyntax)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidNumber.Wrap(unwrapNumError(err))
	}

	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidNumber.Wrap(unwrapNumError(err))
	}

	return v, nil
}

func parseString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// unwrapNumError drops strconv's echo of the input, which ConversionError
// already reports.
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}

	return err
}
