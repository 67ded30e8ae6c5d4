package config

// SiteConfig is the static definition of a documentation site: metadata,
// localization, markdown features and the ordered preset/theme/plugin lists
// handed to the site generator. It is built once by Load and never mutated
// afterwards.
type SiteConfig struct {
	Title            string `yaml:"title" mapstructure:"title"`
	Tagline          string `yaml:"tagline,omitempty" mapstructure:"tagline"`
	URL              string `yaml:"url" mapstructure:"url"`
	BaseURL          string `yaml:"baseUrl" mapstructure:"baseUrl"`
	Favicon          string `yaml:"favicon,omitempty" mapstructure:"favicon"`
	OrganizationName string `yaml:"organizationName,omitempty" mapstructure:"organizationName"`
	ProjectName      string `yaml:"projectName,omitempty" mapstructure:"projectName"`

	OnBrokenLinks         ReportingSeverity `yaml:"onBrokenLinks,omitempty" mapstructure:"onBrokenLinks"`
	OnBrokenMarkdownLinks ReportingSeverity `yaml:"onBrokenMarkdownLinks,omitempty" mapstructure:"onBrokenMarkdownLinks"`
	OnDuplicateRoutes     ReportingSeverity `yaml:"onDuplicateRoutes,omitempty" mapstructure:"onDuplicateRoutes"`
	TrailingSlash         *bool             `yaml:"trailingSlash,omitempty" mapstructure:"trailingSlash"`

	I18n     I18nConfig     `yaml:"i18n" mapstructure:"i18n"`
	Markdown MarkdownConfig `yaml:"markdown" mapstructure:"markdown"`

	Presets []PluginEntry `yaml:"presets,omitempty" mapstructure:"presets"`
	Themes  []PluginEntry `yaml:"themes,omitempty" mapstructure:"themes"`
	Plugins []PluginEntry `yaml:"plugins,omitempty" mapstructure:"plugins"`

	ThemeConfig       ThemeConfig    `yaml:"themeConfig" mapstructure:"themeConfig"`
	StaticDirectories []string       `yaml:"staticDirectories,omitempty" mapstructure:"staticDirectories"`
	CustomFields      map[string]any `yaml:"customFields,omitempty" mapstructure:"customFields"`
}

// I18nConfig lists the locales the site is published in.
type I18nConfig struct {
	DefaultLocale string   `yaml:"defaultLocale" mapstructure:"defaultLocale"`
	Locales       []string `yaml:"locales" mapstructure:"locales"`
}

// MarkdownConfig holds markdown feature flags.
type MarkdownConfig struct {
	Mermaid bool           `yaml:"mermaid" mapstructure:"mermaid"`
	Format  MarkdownFormat `yaml:"format,omitempty" mapstructure:"format"`
}

// PluginEntry is one (identifier, options) pair of a preset, theme or plugin list.
type PluginEntry struct {
	Name    string         `yaml:"name" mapstructure:"name"`
	Options map[string]any `yaml:"options,omitempty" mapstructure:"options"`
}

// ThemeConfig is passed to the theme at render time. Keys not modelled here
// (announcement bars, search widgets, ...) are preserved in Extra.
type ThemeConfig struct {
	Navbar    NavbarConfig    `yaml:"navbar,omitempty" mapstructure:"navbar"`
	Footer    FooterConfig    `yaml:"footer,omitempty" mapstructure:"footer"`
	Prism     PrismConfig     `yaml:"prism,omitempty" mapstructure:"prism"`
	ColorMode ColorModeConfig `yaml:"colorMode,omitempty" mapstructure:"colorMode"`
	Extra     map[string]any  `yaml:",inline" mapstructure:",remain"`
}

// NavbarConfig describes the top navigation bar.
type NavbarConfig struct {
	Title string       `yaml:"title,omitempty" mapstructure:"title"`
	Logo  *LogoConfig  `yaml:"logo,omitempty" mapstructure:"logo"`
	Items []NavbarItem `yaml:"items,omitempty" mapstructure:"items"`
}

// LogoConfig is a navbar or footer logo.
type LogoConfig struct {
	Alt  string `yaml:"alt,omitempty" mapstructure:"alt"`
	Src  string `yaml:"src" mapstructure:"src"`
	Href string `yaml:"href,omitempty" mapstructure:"href"`
}

// NavbarItem is one navbar entry. Exactly one of Href, To or DocID addresses it.
type NavbarItem struct {
	Type      string         `yaml:"type,omitempty" mapstructure:"type"`
	Label     string         `yaml:"label,omitempty" mapstructure:"label"`
	Href      string         `yaml:"href,omitempty" mapstructure:"href"`
	To        string         `yaml:"to,omitempty" mapstructure:"to"`
	DocID     string         `yaml:"docId,omitempty" mapstructure:"docId"`
	SidebarID string         `yaml:"sidebarId,omitempty" mapstructure:"sidebarId"`
	Position  NavbarPosition `yaml:"position,omitempty" mapstructure:"position"`
	Extra     map[string]any `yaml:",inline" mapstructure:",remain"`
}

// FooterConfig describes the page footer.
type FooterConfig struct {
	Style     FooterStyle      `yaml:"style,omitempty" mapstructure:"style"`
	Copyright string           `yaml:"copyright,omitempty" mapstructure:"copyright"`
	Links     []map[string]any `yaml:"links,omitempty" mapstructure:"links"`
}

// PrismConfig selects code highlighting themes.
type PrismConfig struct {
	Theme               string   `yaml:"theme,omitempty" mapstructure:"theme"`
	DarkTheme           string   `yaml:"darkTheme,omitempty" mapstructure:"darkTheme"`
	AdditionalLanguages []string `yaml:"additionalLanguages,omitempty" mapstructure:"additionalLanguages"`
}

// ColorModeConfig controls light/dark switching.
type ColorModeConfig struct {
	DefaultMode               string `yaml:"defaultMode,omitempty" mapstructure:"defaultMode"`
	DisableSwitch             bool   `yaml:"disableSwitch,omitempty" mapstructure:"disableSwitch"`
	RespectPrefersColorScheme bool   `yaml:"respectPrefersColorScheme,omitempty" mapstructure:"respectPrefersColorScheme"`
}

// PluginLists returns the three ordered lists keyed by their definition field name.
func (c *SiteConfig) PluginLists() map[string][]PluginEntry {
	return map[string][]PluginEntry{
		"presets": c.Presets,
		"themes":  c.Themes,
		"plugins": c.Plugins,
	}
}

// HasLocale reports whether locale is one of the configured locales.
func (c *SiteConfig) HasLocale(locale string) bool {
	for _, l := range c.I18n.Locales {
		if l == locale {
			return true
		}
	}
	return false
}
