package cmdline

import (
	"strings"
	"unicode"
)

// Parse splits a command line into options in source order.
//
// Each argument may be wrapped in double quotes as a whole, may start with a
// '-' or '/' marker, and may carry a value after '='. Values are read up to the
// matching quote when quoted with '"' or '\'', up to the closing whole-argument
// quote, or otherwise up to the next space. Values are trimmed of surrounding
// whitespace.
func Parse(text string) []Option {
	var opts []Option

	s := []rune(text)
	n := len(s)

	for i := 0; i < n; {
		i = skipSpace(s, i)
		if i >= n {
			break
		}

		wholeQuote := s[i] == '"'
		if wholeQuote {
			i++
		}

		if i < n && (s[i] == '-' || s[i] == '/') {
			i++
		}

		i = skipSpace(s, i)

		start := i
		for i < n && !endsName(s[i], wholeQuote) {
			i++
		}

		name := string(s[start:i])

		i = skipSpace(s, i)

		// A trailing '=' with nothing after it counts as no value.
		if i >= n-1 || s[i] != '=' {
			opts = append(opts, Option{Name: name})

			if wholeQuote {
				i++ // closing quote, not validated
			}

			// Anything else here starts the next argument (or is its marker),
			// except a dangling '=' which must be consumed to make progress.
			if i < n && s[i] == '=' {
				i++
			}

			continue
		}

		i++ // '='

		var value []rune

		switch {
		case s[i] == '"':
			value, i = readUntil(s, i+1, '"')
			i++

		case s[i] == '\'':
			value, i = readUntil(s, i+1, '\'')
			i++

		case wholeQuote:
			value, i = readUntil(s, i, '"')
			i++

		default:
			value, i = readUntil(s, i, ' ')
		}

		opts = append(opts, Option{
			Name:     name,
			Value:    strings.TrimSpace(string(value)),
			Assigned: true,
		})
	}

	return opts
}

// endsName reports whether r terminates an option name. Inside a quoted
// argument the closing quote ends the name as well.
func endsName(r rune, wholeQuote bool) bool {
	return r == '-' || r == '=' || unicode.IsSpace(r) || (wholeQuote && r == '"')
}

func skipSpace(s []rune, i int) int {
	for i < len(s) && unicode.IsSpace(s[i]) {
		i++
	}

	return i
}

// readUntil returns the runes from i up to (not including) the next stop rune
// or the end of s, and the index of the stop rune (or len(s)).
func readUntil(s []rune, i int, stop rune) ([]rune, int) {
	start := i
	for i < len(s) && s[i] != stop {
		i++
	}

	return s[start:i], i
}

// Join builds a command line from individual arguments, as received in
// os.Args, so that [Parse] recovers the original name/value pairs.
//
// Arguments containing whitespace are re-quoted: the value after '=' is
// wrapped in double quotes (single quotes if it contains a double quote), and
// arguments without a value are wrapped as a whole.
func Join(args []string) string {
	parts := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.ContainsFunc(arg, unicode.IsSpace) {
			parts = append(parts, arg)

			continue
		}

		name, value, ok := strings.Cut(arg, "=")

		switch {
		case ok && !strings.Contains(value, `"`):
			parts = append(parts, name+`="`+value+`"`)
		case ok && !strings.Contains(value, `'`):
			parts = append(parts, name+`='`+value+`'`)
		case !strings.Contains(arg, `"`):
			parts = append(parts, `"`+arg+`"`)
		default:
			parts = append(parts, arg)
		}
	}

	return strings.Join(parts, " ")
}
