package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/janusbuild/cmdline"
	"github.com/ardnew/janusbuild/ide"
)

type (
	contextKey     struct{}
	tableKey       struct{}
	locatorKey     struct{}
	commandLineKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer kong was configured with, or os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// WithTable returns a new context.Context carrying the option table shared by
// all commands of one invocation.
func WithTable(ctx context.Context, t *cmdline.Table) context.Context {
	return context.WithValue(ctx, tableKey{}, t)
}

// tableFrom returns the option table stored by [WithTable], or a new empty
// table if none was stored.
func tableFrom(ctx context.Context) *cmdline.Table {
	if t, ok := ctx.Value(tableKey{}).(*cmdline.Table); ok && t != nil {
		return t
	}

	return cmdline.NewTable()
}

// WithLocator returns a new context.Context carrying the IDE locator.
func WithLocator(ctx context.Context, l *ide.Locator) context.Context {
	return context.WithValue(ctx, locatorKey{}, l)
}

func locatorFrom(ctx context.Context) *ide.Locator {
	if l, ok := ctx.Value(locatorKey{}).(*ide.Locator); ok && l != nil {
		return l
	}

	return ide.NewLocator()
}

// WithCommandLine returns a new context.Context carrying the Janus command
// line: the text of all single-dash arguments given to the program.
func WithCommandLine(ctx context.Context, text string) context.Context {
	return context.WithValue(ctx, commandLineKey{}, text)
}

func commandLineFrom(ctx context.Context) string {
	text, _ := ctx.Value(commandLineKey{}).(string)

	return text
}
