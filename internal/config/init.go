package config

import (
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ExampleConfig returns the sample definition written by Init.
func ExampleConfig() *SiteConfig {
	trailing := false
	return &SiteConfig{
		Title:                 "Compose Destinations",
		Tagline:               "Make your Jetpack Compose navigation code pleasant",
		URL:                   "https://composedestinations.rafaelcosta.xyz",
		BaseURL:               "/",
		Favicon:               "img/favicon.ico",
		OrganizationName:      "raamcosta",
		ProjectName:           "compose-destinations",
		OnBrokenLinks:         SeverityThrow,
		OnBrokenMarkdownLinks: SeverityWarn,
		OnDuplicateRoutes:     SeverityWarn,
		TrailingSlash:         &trailing,
		I18n:                  I18nConfig{DefaultLocale: DefaultLocale, Locales: []string{DefaultLocale}},
		Markdown:              MarkdownConfig{Mermaid: true, Format: MarkdownFormatMDX},
		Presets: []PluginEntry{{
			Name: "classic",
			Options: map[string]any{
				"docs": map[string]any{
					"routeBasePath": "/",
					"sidebarPath":   "sidebars.js",
					"editUrl":       "https://github.com/raamcosta/compose-destinations/tree/main/docs/",
					"lastVersion":   "current",
					"versions": map[string]any{
						"current": map[string]any{"label": "2.x", "path": ""},
						"1.x":     map[string]any{"label": "1.x", "path": "v1"},
					},
				},
				"blog": false,
				"theme": map[string]any{
					"customCss": "src/css/custom.css",
				},
			},
		}},
		Themes: []PluginEntry{
			{Name: "@docusaurus/theme-mermaid"},
			{Name: "@easyops-cn/docusaurus-search-local", Options: map[string]any{"hashed": true}},
		},
		ThemeConfig: ThemeConfig{
			Navbar: NavbarConfig{
				Title: "Compose Destinations",
				Logo:  &LogoConfig{Alt: "Compose Destinations Logo", Src: "img/logo.png"},
				Items: []NavbarItem{
					{Type: "docsVersionDropdown", Position: PositionLeft},
					{Href: "https://github.com/raamcosta/compose-destinations", Label: "GitHub", Position: PositionRight},
				},
			},
			Footer: FooterConfig{
				Style:     FooterDark,
				Copyright: "Copyright © Compose Destinations, Rafael Costa. Built with Docusaurus.",
			},
			Prism: PrismConfig{
				Theme:               DefaultPrismTheme,
				DarkTheme:           DefaultPrismDarkTheme,
				AdditionalLanguages: []string{"kotlin"},
			},
		},
		StaticDirectories: []string{DefaultStaticDirectory},
	}
}

// exampleAssets are created empty next to the definition when missing so the
// sample validates out of the box.
var exampleAssets = []string{
	"sidebars.js",
	filepath.Join("src", "css", "custom.css"),
	filepath.Join(DefaultStaticDirectory, "img", "favicon.ico"),
	filepath.Join(DefaultStaticDirectory, "img", "logo.png"),
	filepath.Join("docs", "intro.md"),
}

// Init writes the example definition to path in the format its extension selects.
// An existing file is only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("definition file already exists (use --force to overwrite)").
			WithContext(ferrors.ContextPath, path).
			UserAction().
			Build()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return ferrors.ConfigError("unsupported definition file").WithContext(ferrors.ContextPath, path).WithCause(err).Build()
	}
	data, err := Marshal(ExampleConfig(), format)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.FileSystemError("failed to create directory").WithContext(ferrors.ContextPath, dir).WithCause(err).Build()
	}
	if err := WriteFile(path, data); err != nil {
		return err
	}
	for _, rel := range exampleAssets {
		if err := touch(filepath.Join(dir, rel)); err != nil {
			return err
		}
	}
	return nil
}

func touch(p string) error {
	if _, err := os.Stat(p); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ferrors.FileSystemError("failed to create directory").WithContext(ferrors.ContextPath, p).WithCause(err).Build()
	}
	content := []byte{}
	if filepath.Ext(p) == ".md" {
		content = []byte("# Introduction\n\nWelcome to the documentation.\n")
	}
	return WriteFile(p, content)
}
