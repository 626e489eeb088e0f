// Package themes provides the built-in themes and a registry that merges
// them with theme files found on disk.
package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themes/internal/theme"
)

// ErrUnknownTheme is returned when a requested theme is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

const (
	darkSuffix  = "-dark"
	lightSuffix = "-light"
)

// builtins lists the themes compiled into the binary.
var builtins = map[string]func() theme.Theme{
	"solarized-dark":  func() theme.Theme { return Solarized(true) },
	"solarized-light": func() theme.Theme { return Solarized(false) },
}

// Builtin returns the built-in themes sorted by name.
func Builtin() []*Entry {
	entries := make([]*Entry, 0, len(builtins))
	for _, build := range builtins {
		entries = append(entries, &Entry{Theme: build(), Source: SourceBuiltin})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Theme.Name < entries[j].Theme.Name
	})
	return entries
}

// Registry resolves themes by name. It is read-only once built.
type Registry struct {
	logger  zerolog.Logger
	entries map[string]*Entry
	order   []string
}

type registryOptions struct {
	projectDir  string
	searchPaths []string
	userThemes  bool
}

// Option configures New.
type Option func(*registryOptions)

// WithProjectDir adds <dir>/.themes to the front of the search paths.
func WithProjectDir(dir string) Option {
	return func(o *registryOptions) {
		o.projectDir = dir
	}
}

// WithSearchPaths replaces the default search paths.
func WithSearchPaths(paths ...string) Option {
	return func(o *registryOptions) {
		o.searchPaths = paths
	}
}

// WithoutUserThemes registers only the built-in themes.
func WithoutUserThemes() Option {
	return func(o *registryOptions) {
		o.userThemes = false
	}
}

// New builds a registry. Theme files found earlier in the search paths
// shadow later ones, and every file shadows a built-in of the same name.
func New(logger zerolog.Logger, opts ...Option) (*Registry, error) {
	options := registryOptions{userThemes: true}
	for _, opt := range opts {
		opt(&options)
	}

	r := &Registry{
		logger:  logger,
		entries: make(map[string]*Entry),
	}

	if options.userThemes {
		paths := options.searchPaths
		if paths == nil {
			paths = SearchPaths(options.projectDir)
		}
		for _, path := range paths {
			loaded, err := LoadThemesFromDir(path)
			if err != nil {
				return nil, err
			}
			for _, entry := range loaded {
				r.add(entry)
			}
		}
	}

	for _, entry := range Builtin() {
		r.add(entry)
	}

	sort.Strings(r.order)
	return r, nil
}

func (r *Registry) add(entry *Entry) {
	name := strings.ToLower(entry.Theme.Name)
	if existing, ok := r.entries[name]; ok {
		r.logger.Debug().
			Str("theme", name).
			Str("source", entry.Source).
			Str("shadowed_by", existing.Source).
			Msg("theme shadowed")
		return
	}
	r.entries[name] = entry
	r.order = append(r.order, name)
	r.logger.Debug().Str("theme", name).Str("source", entry.Source).Msg("theme registered")
}

// Names returns registered theme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entries returns registered entries in name order.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, r.entries[name])
	}
	return entries
}

// Entry looks up a registered entry.
func (r *Registry) Entry(name string) (*Entry, error) {
	entry, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return entry, nil
}

// Get returns a copy of the named theme.
func (r *Registry) Get(name string) (theme.Theme, error) {
	entry, err := r.Entry(name)
	if err != nil {
		return theme.Theme{}, err
	}
	return entry.Theme.Clone(), nil
}

// Variant returns the dark or light member of name's family, such as
// solarized-light for ("solarized-dark", false). Names without a registered
// sibling resolve to themselves.
func (r *Registry) Variant(name string, dark bool) (string, error) {
	entry, err := r.Entry(name)
	if err != nil {
		return "", err
	}

	family := Family(strings.ToLower(entry.Theme.Name))
	want := family + lightSuffix
	if dark {
		want = family + darkSuffix
	}
	if _, ok := r.entries[want]; ok {
		return want, nil
	}
	return strings.ToLower(entry.Theme.Name), nil
}

// Family strips a -dark or -light suffix from a theme name.
func Family(name string) string {
	if family, ok := strings.CutSuffix(name, darkSuffix); ok {
		return family
	}
	if family, ok := strings.CutSuffix(name, lightSuffix); ok {
		return family
	}
	return name
}
