package builtin

import (
	"strings"

	"git.home.luguber.info/inful/docsite/internal/plugin"
)

type pagesOptions struct {
	ID            string   `mapstructure:"id"`
	Path          string   `mapstructure:"path"`
	RouteBasePath string   `mapstructure:"routeBasePath"`
	Include       []string `mapstructure:"include"`
	Exclude       []string `mapstructure:"exclude"`
}

// ContentPagesInstance serves standalone pages.
type ContentPagesInstance struct {
	plugin.BaseInstance
	Path          string
	RouteBasePath string
	Include       []string
	Exclude       []string
}

func newContentPages(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts pagesOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}
	p := &ContentPagesInstance{
		BaseInstance:  plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPlugin, ContentPages, opts.ID, plugin.CapabilityContent)},
		Path:          opts.Path,
		RouteBasePath: strings.Trim(opts.RouteBasePath, "/"),
		Include:       opts.Include,
		Exclude:       opts.Exclude,
	}
	if p.Path == "" {
		p.Path = "src/pages"
	}
	if len(p.Include) == 0 {
		p.Include = []string{"**/*.{js,jsx,ts,tsx,md,mdx}"}
	}
	return p, nil
}

// ContentPath returns the directory pages are read from.
func (p *ContentPagesInstance) ContentPath() string { return p.Path }
