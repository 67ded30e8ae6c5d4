package builtin

import (
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

// ThemeMermaidInstance renders mermaid code blocks as diagrams.
type ThemeMermaidInstance struct {
	plugin.BaseInstance
}

func newThemeMermaid(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts struct{}
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return &ThemeMermaidInstance{
		BaseInstance: plugin.BaseInstance{Meta: ctx.Meta(plugin.KindTheme, ThemeMermaid, "", plugin.CapabilityMermaid)},
	}, nil
}

// Validate requires markdown.mermaid, without which code blocks are never handed to the theme.
func (t *ThemeMermaidInstance) Validate(ctx *plugin.Context) error {
	if ctx.Config != nil && !ctx.Config.Markdown.Mermaid {
		return ferrors.ConfigErrorf("%s requires markdown.mermaid to be true", ThemeMermaid).
			WithField("markdown.mermaid").
			WithContext("theme", ctx.Field).
			Build()
	}
	return nil
}
