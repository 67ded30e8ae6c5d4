package config

import "fmt"

// Default values applied when the definition leaves a field empty.
const (
	DefaultLocale          = "en"
	DefaultStaticDirectory = "static"
	DefaultPrismTheme      = "github"
	DefaultPrismDarkTheme  = "dracula"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *SiteConfig) error
	Domain() string
}

// SiteDefaultApplier handles top-level reporting and static directory defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.OnBrokenLinks == "" {
		cfg.OnBrokenLinks = SeverityThrow
	}
	if cfg.OnBrokenMarkdownLinks == "" {
		cfg.OnBrokenMarkdownLinks = SeverityWarn
	}
	if cfg.OnDuplicateRoutes == "" {
		cfg.OnDuplicateRoutes = SeverityWarn
	}
	if len(cfg.StaticDirectories) == 0 {
		cfg.StaticDirectories = []string{DefaultStaticDirectory}
	}
	return nil
}

// I18nDefaultApplier fills in a single-locale setup. A locale list that is
// present is never extended, so a default locale missing from it still fails validation.
type I18nDefaultApplier struct{}

func (I18nDefaultApplier) Domain() string { return "i18n" }

func (I18nDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.I18n.DefaultLocale == "" {
		cfg.I18n.DefaultLocale = DefaultLocale
	}
	if len(cfg.I18n.Locales) == 0 {
		cfg.I18n.Locales = []string{cfg.I18n.DefaultLocale}
	}
	return nil
}

// MarkdownDefaultApplier handles markdown defaults.
type MarkdownDefaultApplier struct{}

func (MarkdownDefaultApplier) Domain() string { return "markdown" }

func (MarkdownDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.Markdown.Format == "" {
		cfg.Markdown.Format = MarkdownFormatMDX
	}
	return nil
}

// ThemeDefaultApplier handles themeConfig defaults.
type ThemeDefaultApplier struct{}

func (ThemeDefaultApplier) Domain() string { return "themeConfig" }

func (ThemeDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.ThemeConfig.Prism.Theme == "" {
		cfg.ThemeConfig.Prism.Theme = DefaultPrismTheme
	}
	if cfg.ThemeConfig.Prism.DarkTheme == "" {
		cfg.ThemeConfig.Prism.DarkTheme = DefaultPrismDarkTheme
	}
	if cfg.ThemeConfig.Footer.Style == "" {
		cfg.ThemeConfig.Footer.Style = FooterDark
	}
	return nil
}

// defaultAppliers run in order; later domains may rely on earlier ones.
var defaultAppliers = []DefaultApplier{
	SiteDefaultApplier{},
	I18nDefaultApplier{},
	MarkdownDefaultApplier{},
	ThemeDefaultApplier{},
}

// applyDefaults applies default values to configuration.
func applyDefaults(cfg *SiteConfig) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("%s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}
