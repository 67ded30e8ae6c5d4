package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// ValidateConfig validates the complete site definition. The first violation
// is returned as a ConfigError naming the offending field.
func ValidateConfig(cfg *SiteConfig) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *SiteConfig
}

func newConfigurationValidator(config *SiteConfig) *configurationValidator {
	return &configurationValidator{config: config}
}

// validate performs configuration validation using domain-specific methods.
func (cv *configurationValidator) validate() error {
	if cv.config == nil {
		return ferrors.ConfigError("site definition is empty").Build()
	}
	steps := []func() error{
		cv.validateRequired,
		cv.validateURL,
		cv.validateBaseURL,
		cv.validateFavicon,
		cv.validateReporting,
		cv.validateI18n,
		cv.validateMarkdown,
		cv.validatePluginEntries,
		cv.validateThemeConfig,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateRequired() error {
	required := []struct {
		field string
		value string
	}{
		{"title", cv.config.Title},
		{"url", cv.config.URL},
		{"baseUrl", cv.config.BaseURL},
	}
	for _, r := range required {
		if r.value == "" {
			return ferrors.ConfigError("field is required").WithField(r.field).Build()
		}
	}
	return nil
}

// validateURL requires an absolute http(s) URL. A path component belongs in baseUrl
// and is only reported.
func (cv *configurationValidator) validateURL() error {
	raw := cv.config.URL
	u, err := url.Parse(raw)
	if err != nil {
		return ferrors.ConfigError("not a valid URL").WithField("url").WithContext("value", raw).WithCause(err).Build()
	}
	if !u.IsAbs() || u.Host == "" {
		return ferrors.ConfigErrorf("must be an absolute URL such as https://example.com, got %q", raw).WithField("url").Build()
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ferrors.ConfigErrorf("unsupported scheme %q (allowed: http|https)", u.Scheme).WithField("url").Build()
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return ferrors.ConfigError("must not contain a query or fragment").WithField("url").Build()
	}
	if u.Path != "" && u.Path != "/" {
		slog.Warn("url contains a path; move it to baseUrl", logfields.Field("url"), logfields.Route(u.Path))
	}
	return nil
}

func (cv *configurationValidator) validateBaseURL() error {
	b := cv.config.BaseURL
	if !strings.HasPrefix(b, "/") || !strings.HasSuffix(b, "/") {
		return ferrors.ConfigErrorf("must start and end with '/', got %q", b).WithField("baseUrl").Build()
	}
	if strings.Contains(b, "//") {
		return ferrors.ConfigErrorf("must not contain empty path segments, got %q", b).WithField("baseUrl").Build()
	}
	return nil
}

// validateFavicon requires a path relative to a static directory.
func (cv *configurationValidator) validateFavicon() error {
	f := cv.config.Favicon
	if f == "" {
		return nil
	}
	if u, err := url.Parse(f); err != nil || u.Scheme != "" || u.Host != "" {
		return ferrors.ConfigErrorf("must be a relative asset path, got %q", f).WithField("favicon").Build()
	}
	if strings.HasPrefix(f, "/") {
		return ferrors.ConfigErrorf("must be relative to a static directory, got %q", f).WithField("favicon").Build()
	}
	if cleaned := path.Clean(f); cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return ferrors.ConfigErrorf("must not leave the static directory, got %q", f).WithField("favicon").Build()
	}
	return nil
}

func (cv *configurationValidator) validateReporting() error {
	checks := []struct {
		field string
		value ReportingSeverity
	}{
		{"onBrokenLinks", cv.config.OnBrokenLinks},
		{"onBrokenMarkdownLinks", cv.config.OnBrokenMarkdownLinks},
		{"onDuplicateRoutes", cv.config.OnDuplicateRoutes},
	}
	for _, c := range checks {
		if NormalizeReportingSeverity(string(c.value)) != c.value {
			return ferrors.ConfigErrorf("invalid value %q (allowed: %s)", c.value, severities.Allowed()).WithField(c.field).Build()
		}
	}
	return nil
}

// validateI18n enforces defaultLocale ∈ locales and well-formed BCP 47 tags.
func (cv *configurationValidator) validateI18n() error {
	i := cv.config.I18n
	if i.DefaultLocale == "" {
		return ferrors.ConfigError("field is required").WithField("i18n.defaultLocale").Build()
	}
	if len(i.Locales) == 0 {
		return ferrors.ConfigError("at least one locale is required").WithField("i18n.locales").Build()
	}
	for idx, l := range i.Locales {
		if _, err := language.Parse(l); err != nil {
			return ferrors.ConfigErrorf("invalid locale %q", l).
				WithField(fmt.Sprintf("i18n.locales[%d]", idx)).
				WithCause(err).
				Build()
		}
	}
	if !cv.config.HasLocale(i.DefaultLocale) {
		return ferrors.ConfigErrorf("default locale %q is not listed in i18n.locales %v", i.DefaultLocale, i.Locales).
			WithField("i18n.defaultLocale").
			Build()
	}
	return nil
}

func (cv *configurationValidator) validateMarkdown() error {
	if NormalizeMarkdownFormat(string(cv.config.Markdown.Format)) != cv.config.Markdown.Format {
		return ferrors.ConfigErrorf("invalid value %q (allowed: %s)", cv.config.Markdown.Format, markdownFormats.Allowed()).WithField("markdown.format").Build()
	}
	return nil
}

func (cv *configurationValidator) validatePluginEntries() error {
	for _, key := range pluginListKeys {
		for idx, e := range cv.config.PluginLists()[key] {
			if e.Name == "" {
				return ferrors.ConfigError("identifier is required").WithField(fmt.Sprintf("%s[%d].name", key, idx)).Build()
			}
		}
	}
	return nil
}

func (cv *configurationValidator) validateThemeConfig() error {
	t := cv.config.ThemeConfig
	if NormalizeFooterStyle(string(t.Footer.Style)) != t.Footer.Style {
		return ferrors.ConfigErrorf("invalid value %q (allowed: %s)", t.Footer.Style, footerStyles.Allowed()).WithField("themeConfig.footer.style").Build()
	}
	if t.Navbar.Logo != nil && t.Navbar.Logo.Src == "" {
		return ferrors.ConfigError("field is required").WithField("themeConfig.navbar.logo.src").Build()
	}
	for idx, item := range t.Navbar.Items {
		if err := validateNavbarItem(idx, item); err != nil {
			return err
		}
	}
	return nil
}

func validateNavbarItem(idx int, item NavbarItem) error {
	field := fmt.Sprintf("themeConfig.navbar.items[%d]", idx)
	if item.Position != "" && NormalizeNavbarPosition(string(item.Position)) != item.Position {
		return ferrors.ConfigErrorf("invalid position %q (allowed: %s)", item.Position, navbarPositions.Allowed()).WithField(field + ".position").Build()
	}
	switch item.Type {
	case "", "default":
		if item.Href == "" && item.To == "" {
			return ferrors.ConfigError("link item needs href or to").WithField(field).Build()
		}
		if item.Href != "" && item.To != "" {
			return ferrors.ConfigError("link item must not set both href and to").WithField(field).Build()
		}
	case "doc":
		if item.DocID == "" {
			return ferrors.ConfigError("doc item needs docId").WithField(field + ".docId").Build()
		}
	case "docSidebar":
		if item.SidebarID == "" {
			return ferrors.ConfigError("docSidebar item needs sidebarId").WithField(field + ".sidebarId").Build()
		}
	}
	return nil
}
