package plugin

import (
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Set holds the resolved instances of a site definition, per kind, in application order.
type Set struct {
	Presets []Instance
	Themes  []Instance
	Plugins []Instance
}

// ByKind returns the instances of one kind.
func (s *Set) ByKind(kind Kind) []Instance {
	switch kind {
	case KindPreset:
		return s.Presets
	case KindTheme:
		return s.Themes
	case KindPlugin:
		return s.Plugins
	default:
		return nil
	}
}

// All returns every instance: presets, then themes, then plugins.
func (s *Set) All() []Instance {
	out := make([]Instance, 0, len(s.Presets)+len(s.Themes)+len(s.Plugins))
	out = append(out, s.Presets...)
	out = append(out, s.Themes...)
	return append(out, s.Plugins...)
}

// ResolveSite resolves presets first, inserts their contributions ahead of the
// explicit themes and plugins, resolves those, then runs every Validator.
func (r *Registry) ResolveSite(ctx *Context) (*Set, error) {
	cfg := ctx.Config
	set := &Set{}

	presets, err := r.Resolve(ctx, KindPreset, cfg.Presets)
	if err != nil {
		return nil, err
	}
	set.Presets = presets

	var themeSources, pluginSources []Source
	for _, p := range presets {
		exp, ok := p.(Expander)
		if !ok {
			continue
		}
		for _, c := range exp.Expand() {
			src := Source{Field: c.Field, OptionsField: c.Field, Entry: c.Entry}
			switch c.Kind {
			case KindTheme:
				themeSources = append(themeSources, src)
			case KindPlugin:
				pluginSources = append(pluginSources, src)
			}
		}
	}
	themeSources = append(themeSources, Sources(KindTheme, cfg.Themes)...)
	pluginSources = append(pluginSources, Sources(KindPlugin, cfg.Plugins)...)

	if set.Themes, err = r.ResolveSources(ctx, KindTheme, themeSources); err != nil {
		return nil, err
	}
	if set.Plugins, err = r.ResolveSources(ctx, KindPlugin, pluginSources); err != nil {
		return nil, err
	}

	for _, inst := range set.All() {
		v, ok := inst.(Validator)
		if !ok {
			continue
		}
		if err := v.Validate(ctx.WithField(inst.Metadata().Field)); err != nil {
			return nil, err
		}
	}

	for _, k := range Kinds {
		ctx.Logger.Debug("Resolved plugin list", logfields.Kind(k.String()), logfields.Count(len(set.ByKind(k))))
	}
	return set, nil
}
