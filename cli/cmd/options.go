package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/config"
	"github.com/ardnew/janusbuild/option"
)

// Options prints the Janus option help, or shows how a command line is
// tokenized and which options it matches.
type Options struct {
	Parse string `help:"Command line to tokenize instead of the Janus arguments." placeholder:"TEXT"`
}

// Run executes the options command.
func (o *Options) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text := o.Parse
	if text == "" {
		text = commandLineFrom(ctx)
	}

	r := config.Default().Registry()

	if text == "" {
		return writeHelp(stdout(ctx), r)
	}

	return writeOptions(stdout(ctx), r, tableFrom(ctx).Options(text))
}

func writeOptions(w io.Writer, r *option.Registry, opts []cmdline.Option) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("OPTION", "VALUE", "PRESENCE", "MATCH").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})

	for _, opt := range opts {
		t.Row(opt.Name, opt.Value, opt.Presence().String(), match(r, opt))
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// match describes what opt binds to in r.
func match(r *option.Registry, opt cmdline.Option) string {
	if d, ok := r.Lookup(opt.Name); ok {
		return d.Name + " (" + d.Type.String() + ")"
	}

	if config.IsDefine(r, opt) {
		return "define"
	}

	if s := r.Suggest(opt.Name); len(s) > 0 {
		return "unknown, did you mean " + strings.Join(s[:min(len(s), 3)], ", ") + "?"
	}

	return "unknown"
}
