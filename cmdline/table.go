package cmdline

import (
	"slices"
	"sync"
)

// Table memoizes tokenized command lines keyed by their exact text.
//
// Texts that differ only in whitespace or quoting are distinct keys. A Table
// is safe for concurrent use; the zero value is not usable, use [NewTable].
type Table struct {
	mu    sync.Mutex
	cache map[string][]Option
	parse func(string) []Option
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		cache: make(map[string][]Option),
		parse: Parse,
	}
}

// Options returns the options parsed from text, tokenizing text only if it
// has not been seen before. The returned slice is a copy owned by the caller.
func (t *Table) Options(text string) []Option {
	return slices.Clone(t.options(text))
}

// options returns the cached slice itself; callers must not modify it.
func (t *Table) options(text string) []Option {
	t.mu.Lock()
	defer t.mu.Unlock()

	opts, ok := t.cache[text]
	if !ok {
		opts = t.parse(text)
		t.cache[text] = opts
	}

	return opts
}

// Lookup returns the first option in text named name (ignoring case) and how
// it was given.
func (t *Table) Lookup(text, name string) (Option, Presence) {
	return Lookup(t.options(text), name)
}

// Has reports whether text contains an option named name (ignoring case).
func (t *Table) Has(text, name string) bool {
	if text == "" {
		return false
	}

	_, p := t.Lookup(text, name)

	return p != Absent
}

// Len returns the number of distinct command lines cached.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.cache)
}

// Reset discards all cached tokenizations.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.cache)
}
