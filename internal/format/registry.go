package format

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Registry resolves output format names to formatters. Names are matched
// case-insensitively, and a format may be reachable under aliases.
// Registration happens at startup; lookups are read-only afterwards.
type Registry struct {
	formats map[string]Formatter
	aliases map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Formatter),
		aliases: make(map[string]string),
	}
}

// Register adds f under name and any aliases. It panics on an empty name,
// a nil formatter, or a name or alias that is already taken.
func (r *Registry) Register(name string, f Formatter, aliases ...string) {
	name = normalize(name)
	if name == "" {
		panic("format: Register called with empty name")
	}
	if f == nil {
		panic(fmt.Sprintf("format: Register %q called with nil formatter", name))
	}
	for _, n := range append([]string{name}, aliases...) {
		if r.taken(normalize(n)) {
			panic(fmt.Sprintf("format: %q already registered", n))
		}
	}
	r.formats[name] = f
	for _, a := range aliases {
		r.aliases[normalize(a)] = name
	}
}

// New returns the formatter registered under name or one of its aliases.
func (r *Registry) New(name string) (Formatter, error) {
	key := normalize(name)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	f, ok := r.formats[key]
	if !ok {
		return nil, &UnknownFormatError{Name: name, Available: r.Available()}
	}
	return f, nil
}

// Available returns the registered format names, without aliases, sorted.
func (r *Registry) Available() []string {
	return slices.Sorted(maps.Keys(r.formats))
}

func (r *Registry) taken(name string) bool {
	_, isFormat := r.formats[name]
	_, isAlias := r.aliases[name]
	return isFormat || isAlias
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UnknownFormatError indicates a format name is not registered.
type UnknownFormatError struct {
	Name      string
	Available []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
