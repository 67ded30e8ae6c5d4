// Package builtin registers the presets, themes and plugins the loader knows about.
package builtin

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/plugin"
)

// Canonical identifiers of the built-in constructors.
const (
	PresetClassic   = "@docusaurus/preset-classic"
	ContentDocs     = "@docusaurus/plugin-content-docs"
	ContentBlog     = "@docusaurus/plugin-content-blog"
	ContentPages    = "@docusaurus/plugin-content-pages"
	ClientRedirects = "@docusaurus/plugin-client-redirects"
	Sitemap         = "@docusaurus/plugin-sitemap"
	ThemeClassic    = "@docusaurus/theme-classic"
	ThemeMermaid    = "@docusaurus/theme-mermaid"
	SearchLocal     = "@easyops-cn/docusaurus-search-local"
)

type registration struct {
	kind    plugin.Kind
	name    string
	factory plugin.Factory
	aliases []string
}

var registrations = []registration{
	{plugin.KindPreset, PresetClassic, newPresetClassic, nil},
	{plugin.KindPlugin, ContentDocs, newContentDocs, []string{"docs"}},
	{plugin.KindPlugin, ContentBlog, newContentBlog, []string{"blog"}},
	{plugin.KindPlugin, ContentPages, newContentPages, []string{"pages"}},
	{plugin.KindPlugin, ClientRedirects, newClientRedirects, []string{"redirects"}},
	{plugin.KindPlugin, Sitemap, newSitemap, nil},
	{plugin.KindTheme, ThemeClassic, newThemeClassic, nil},
	{plugin.KindTheme, ThemeMermaid, newThemeMermaid, nil},
	{plugin.KindTheme, SearchLocal, newSearchLocal, []string{"search-local"}},
}

// Register adds every built-in constructor to r.
func Register(r *plugin.Registry) error {
	for _, reg := range registrations {
		if err := r.Register(reg.kind, reg.name, reg.factory, reg.aliases...); err != nil {
			return fmt.Errorf("register builtin %s: %w", reg.name, err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding all built-in constructors.
func NewRegistry() *plugin.Registry {
	r := plugin.NewRegistry()
	if err := Register(r); err != nil {
		// Built-in names are fixed at compile time; a clash is a programming error.
		panic(err)
	}
	return r
}
