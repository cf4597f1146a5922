package cmdline

import (
	"log/slog"
	"strings"
)

// Option is a single named, optionally valued unit parsed from a command line.
type Option struct {
	Name  string
	Value string
	// Assigned reports whether the option carried an "=value" clause.
	Assigned bool
}

// String returns the option in command-line form.
func (o Option) String() string {
	if !o.Assigned {
		return "-" + o.Name
	}

	return "-" + o.Name + "=" + o.Value
}

// LogValue implements slog.LogValuer.
func (o Option) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", o.Name),
		slog.String("value", o.Value),
		slog.Bool("assigned", o.Assigned),
	)
}

// Presence describes how an option appeared on a command line.
type Presence int

const (
	Absent Presence = iota // absent
	Flag                   // flag
	Valued                 // valued
)

// String returns the lowercase name of the presence.
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Flag:
		return "flag"
	case Valued:
		return "valued"
	default:
		return "unknown"
	}
}

// Presence returns [Valued] if the option carried a value clause and [Flag]
// otherwise.
func (o Option) Presence() Presence {
	if o.Assigned {
		return Valued
	}

	return Flag
}

// Lookup returns the first option whose name equals name, ignoring case.
// The returned presence is [Absent] if no such option exists.
func Lookup(opts []Option, name string) (Option, Presence) {
	for _, o := range opts {
		if strings.EqualFold(o.Name, name) {
			return o, o.Presence()
		}
	}

	return Option{}, Absent
}
