package plugin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Factory constructs an instance from the options of one definition entry.
type Factory func(ctx *Context, options map[string]any) (Instance, error)

// Registration describes a registered constructor.
type Registration struct {
	Kind    Kind
	Name    string
	Aliases []string
	factory Factory
}

// Registry maps canonical identifiers to constructors, per kind.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]map[string]*Registration
	aliases map[Kind]map[string]string // alias -> canonical name
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[Kind]map[string]*Registration),
		aliases: make(map[Kind]map[string]string),
	}
	for _, k := range Kinds {
		r.entries[k] = make(map[string]*Registration)
		r.aliases[k] = make(map[string]string)
	}
	return r
}

// Register adds a constructor under a canonical name and optional aliases.
// Returns an error if the name or an alias is already taken for the kind.
func (r *Registry) Register(kind Kind, name string, factory Factory, aliases ...string) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid plugin kind: %s", kind)
	}
	if name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if factory == nil {
		return fmt.Errorf("cannot register nil factory for %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(kind, name) {
		return fmt.Errorf("%s %s already registered", kind, name)
	}
	for _, a := range aliases {
		if a == name || r.taken(kind, a) {
			return fmt.Errorf("%s alias %s already registered", kind, a)
		}
	}

	r.entries[kind][name] = &Registration{Kind: kind, Name: name, Aliases: append([]string(nil), aliases...), factory: factory}
	for _, a := range aliases {
		r.aliases[kind][a] = name
	}
	return nil
}

func (r *Registry) taken(kind Kind, name string) bool {
	if _, ok := r.entries[kind][name]; ok {
		return true
	}
	_, ok := r.aliases[kind][name]
	return ok
}

// CandidateNames returns the identifiers tried for a definition entry, in order.
// Short names expand the way site definitions are usually written:
//
//	classic              -> classic, @docusaurus/preset-classic, docusaurus-preset-classic
//	@scope               -> @scope/docusaurus-<kind>
//	@scope/name          -> @scope/name, @scope/docusaurus-<kind>-name
func CandidateNames(kind Kind, name string) []string {
	if strings.HasPrefix(name, "@") {
		scope, pkg, found := strings.Cut(name, "/")
		if !found {
			return []string{fmt.Sprintf("%s/docusaurus-%s", name, kind)}
		}
		return []string{name, fmt.Sprintf("%s/docusaurus-%s-%s", scope, kind, pkg)}
	}
	return []string{
		name,
		fmt.Sprintf("@docusaurus/%s-%s", kind, name),
		fmt.Sprintf("docusaurus-%s-%s", kind, name),
	}
}

// Lookup finds the registration answering to name, trying the candidate forms in order.
func (r *Registry) Lookup(kind Kind, name string) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range CandidateNames(kind, name) {
		if reg, ok := r.entries[kind][candidate]; ok {
			return reg, true
		}
		if canonical, ok := r.aliases[kind][candidate]; ok {
			return r.entries[kind][canonical], true
		}
	}
	return nil, false
}

// List returns the registrations of a kind sorted by name.
func (r *Registry) List(kind Kind) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Registration, 0, len(r.entries[kind]))
	for _, reg := range r.entries[kind] {
		result = append(result, *reg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Count returns the total number of registered constructors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.entries {
		count += len(m)
	}
	return count
}

// Source is a definition entry together with the field it was read from.
type Source struct {
	Field        string
	OptionsField string // defaults to Field+".options"
	Entry        config.PluginEntry
}

// Sources pairs each entry of a definition list with its indexed field name.
func Sources(kind Kind, entries []config.PluginEntry) []Source {
	out := make([]Source, len(entries))
	for i, e := range entries {
		out[i] = Source{Field: fmt.Sprintf("%s[%d]", kind.ListField(), i), Entry: e}
	}
	return out
}

// Resolve constructs the instances of one definition list.
func (r *Registry) Resolve(ctx *Context, kind Kind, entries []config.PluginEntry) ([]Instance, error) {
	return r.ResolveSources(ctx, kind, Sources(kind, entries))
}

// ResolveSources constructs instances in order. A later source with the same
// canonical name and id replaces the earlier instance in its original position.
func (r *Registry) ResolveSources(ctx *Context, kind Kind, sources []Source) ([]Instance, error) {
	result := make([]Instance, 0, len(sources))
	position := make(map[string]int, len(sources))

	for _, src := range sources {
		reg, ok := r.Lookup(kind, src.Entry.Name)
		if !ok {
			return nil, ferrors.PluginResolutionError(fmt.Sprintf("unknown %s %q", kind, src.Entry.Name)).
				WithField(src.Field).
				WithContext("candidates", CandidateNames(kind, src.Entry.Name)).
				Build()
		}

		instance, err := reg.factory(ctx.WithFields(src.Field, src.OptionsField), src.Entry.Options)
		if err != nil {
			if _, ok := ferrors.AsClassified(err); ok {
				return nil, err
			}
			return nil, ferrors.ConfigErrorf("cannot construct %s %s", kind, reg.Name).
				WithField(src.Field).
				WithCause(err).
				Build()
		}
		meta := instance.Metadata()
		if err := meta.Validate(); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "constructor returned invalid metadata").
				WithField(src.Field).
				Fatal().
				Build()
		}

		key := meta.Key()
		if idx, dup := position[key]; dup {
			previous := result[idx].Metadata()
			ctx.Logger.Warn("Later entry overrides earlier one",
				logfields.Kind(kind.String()),
				logfields.Plugin(meta.Name),
				logfields.Field(src.Field),
				"overridden", previous.Field)
			result[idx] = instance
			continue
		}
		position[key] = len(result)
		result = append(result, instance)
	}
	return result, nil
}
