package option

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Registry is an ordered, immutable set of descriptors indexed by
// case-insensitive name.
type Registry struct {
	descs []Descriptor
	index map[string]int
}

// NewRegistry validates and freezes descs in declaration order.
// Empty names, missing targets and names that collide case-insensitively are
// rejected.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		descs: slices.Clone(descs),
		index: make(map[string]int, len(descs)),
	}

	for i, d := range r.descs {
		if d.Name == "" {
			return nil, ErrEmptyName.With(slog.Int("index", i))
		}

		if d.set == nil {
			return nil, ErrNilTarget.With(slog.String("option", d.Name))
		}

		key := strings.ToLower(d.Name)
		if j, ok := r.index[key]; ok {
			return nil, ErrDuplicateOption.With(
				slog.String("option", d.Name),
				slog.String("previous", r.descs[j].Name),
			)
		}

		r.index[key] = i
	}

	return r, nil
}

// MustRegistry is like [NewRegistry] but panics on error. It is meant for
// schemas declared in code.
func MustRegistry(descs ...Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}

	return r
}

// All iterates the descriptors in declaration order.
func (r *Registry) All() iter.Seq[Descriptor] {
	return slices.Values(r.descs)
}

// Len returns the number of descriptors.
func (r *Registry) Len() int { return len(r.descs) }

// Lookup returns the descriptor with the given name, ignoring case.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	i, ok := r.index[strings.ToLower(name)]
	if !ok {
		return Descriptor{}, false
	}

	return r.descs[i], true
}

// Names returns the descriptor names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.descs))
	for i, d := range r.descs {
		names[i] = d.Name
	}

	return names
}

// Suggest returns registered names that fuzzy-match name, best match first.
// It is used to hint at the intended option when name is not registered.
func (r *Registry) Suggest(name string) []string {
	if name == "" {
		return nil
	}

	names := r.Names()
	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
	}

	matches := fuzzy.Find(strings.ToLower(name), lower)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = names[m.Index]
	}

	return out
}
