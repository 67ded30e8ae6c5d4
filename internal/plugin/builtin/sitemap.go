package builtin

import (
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

var changeFrequencies = map[string]struct{}{
	"always": {}, "hourly": {}, "daily": {}, "weekly": {}, "monthly": {}, "yearly": {}, "never": {},
}

type sitemapOptions struct {
	ID             string   `mapstructure:"id"`
	Changefreq     string   `mapstructure:"changefreq"`
	Priority       *float64 `mapstructure:"priority"`
	IgnorePatterns []string `mapstructure:"ignorePatterns"`
	Filename       string   `mapstructure:"filename"`
	LastMod        string   `mapstructure:"lastmod"`
}

// SitemapInstance writes sitemap.xml.
type SitemapInstance struct {
	plugin.BaseInstance
	Changefreq     string
	Priority       float64
	IgnorePatterns []string
	Filename       string
}

func newSitemap(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts sitemapOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}
	s := &SitemapInstance{
		BaseInstance:   plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPlugin, Sitemap, opts.ID, plugin.CapabilitySitemap)},
		Changefreq:     opts.Changefreq,
		Priority:       0.5,
		IgnorePatterns: opts.IgnorePatterns,
		Filename:       opts.Filename,
	}
	if s.Changefreq == "" {
		s.Changefreq = "weekly"
	}
	if _, ok := changeFrequencies[s.Changefreq]; !ok {
		return nil, ferrors.ConfigErrorf("invalid change frequency %q", s.Changefreq).WithField(ctx.OptionField("changefreq")).Build()
	}
	if opts.Priority != nil {
		if *opts.Priority < 0 || *opts.Priority > 1 {
			return nil, ferrors.ConfigErrorf("priority must be within [0, 1], got %v", *opts.Priority).WithField(ctx.OptionField("priority")).Build()
		}
		s.Priority = *opts.Priority
	}
	if s.Filename == "" {
		s.Filename = "sitemap.xml"
	}
	return s, nil
}
