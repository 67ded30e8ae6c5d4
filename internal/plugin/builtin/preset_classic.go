package builtin

import (
	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

// classicOptions are the sections of the classic preset. Each content section
// is an options map for the plugin it enables, or false to leave it out.
type classicOptions struct {
	Docs            any            `mapstructure:"docs"`
	Blog            any            `mapstructure:"blog"`
	Pages           any            `mapstructure:"pages"`
	Sitemap         any            `mapstructure:"sitemap"`
	Theme           map[string]any `mapstructure:"theme"`
	Debug           *bool          `mapstructure:"debug"`
	GoogleAnalytics map[string]any `mapstructure:"googleAnalytics"`
	Gtag            map[string]any `mapstructure:"gtag"`
}

// PresetClassicInstance bundles the content plugins and the classic theme.
type PresetClassicInstance struct {
	plugin.BaseInstance
	contributions []plugin.Contribution
}

func newPresetClassic(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts classicOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}

	p := &PresetClassicInstance{BaseInstance: plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPreset, PresetClassic, "")}}

	sections := []struct {
		key   string
		value any
		name  string
	}{
		{"docs", opts.Docs, ContentDocs},
		{"blog", opts.Blog, ContentBlog},
		{"pages", opts.Pages, ContentPages},
		{"sitemap", opts.Sitemap, Sitemap},
	}
	for _, s := range sections {
		sectionOpts, enabled, err := sectionOptions(s.value)
		if err != nil {
			return nil, ferrors.ConfigError("invalid section").WithField(ctx.OptionField(s.key)).WithCause(err).Build()
		}
		if !enabled {
			continue
		}
		p.contributions = append(p.contributions, plugin.Contribution{
			Kind:  plugin.KindPlugin,
			Field: ctx.OptionField(s.key),
			Entry: config.PluginEntry{Name: s.name, Options: sectionOpts},
		})
	}
	p.contributions = append(p.contributions, plugin.Contribution{
		Kind:  plugin.KindTheme,
		Field: ctx.OptionField("theme"),
		Entry: config.PluginEntry{Name: ThemeClassic, Options: opts.Theme},
	})
	return p, nil
}

// Expand returns the plugin and theme entries enabled by the preset.
func (p *PresetClassicInstance) Expand() []plugin.Contribution {
	return p.contributions
}
