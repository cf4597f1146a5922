package option

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders the parts of help output. The zero value renders plain text.
type Styles struct {
	Heading     lipgloss.Style
	Name        lipgloss.Style
	Hint        lipgloss.Style
	Description lipgloss.Style

	enabled bool
}

// DefaultStyles returns the colorized styles used on terminals.
func DefaultStyles() Styles {
	return Styles{
		Heading:     lipgloss.NewStyle().Bold(true),
		Name:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		enabled:     true,
	}
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}

	return st.Render(text)
}

// Help writes plain-text help for every descriptor in r to w.
func Help(w io.Writer, r *Registry, usage string) error {
	return Styles{}.Help(w, r, usage)
}

// Help writes help for every descriptor in r to w:
//
//	Usage: <usage>
//	Options:
//	 -<name>[=<hint>]
//		<description line>
//		<description line>
//
// Each descriptor block ends with a blank line.
func (s Styles) Help(w io.Writer, r *Registry, usage string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", s.render(s.Heading, "Usage:"), usage)
	fmt.Fprintln(&b, s.render(s.Heading, "Options:"))

	for d := range r.All() {
		b.WriteString(" -")
		b.WriteString(s.render(s.Name, d.Name))

		if d.ValueHint != "" {
			b.WriteString("=")
			b.WriteString(s.render(s.Hint, d.ValueHint))
		}

		b.WriteString("\n")

		for line := range strings.Lines(d.Description) {
			b.WriteString("\t")
			b.WriteString(s.render(s.Description, strings.TrimRight(line, "\r\n")))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}
