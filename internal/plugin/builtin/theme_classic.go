package builtin

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

type themeClassicOptions struct {
	CustomCSS any `mapstructure:"customCss"`
}

// ThemeClassicInstance is the default layout theme.
type ThemeClassicInstance struct {
	plugin.BaseInstance
	CustomCSS []string

	cssField string
}

func newThemeClassic(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts themeClassicOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}
	css, err := stringList(opts.CustomCSS)
	if err != nil {
		return nil, ferrors.ConfigError("expected a path or list of paths").WithField(ctx.OptionField("customCss")).WithCause(err).Build()
	}
	return &ThemeClassicInstance{
		BaseInstance: plugin.BaseInstance{Meta: ctx.Meta(plugin.KindTheme, ThemeClassic, "")},
		CustomCSS:    css,
		cssField:     ctx.OptionField("customCss"),
	}, nil
}

// ReferencedPaths reports the custom stylesheets.
func (t *ThemeClassicInstance) ReferencedPaths() []plugin.PathRef {
	refs := make([]plugin.PathRef, 0, len(t.CustomCSS))
	for i, p := range t.CustomCSS {
		field := t.cssField
		if len(t.CustomCSS) > 1 {
			field = fmt.Sprintf("%s[%d]", t.cssField, i)
		}
		refs = append(refs, plugin.PathRef{Field: field, Path: p})
	}
	return refs
}
