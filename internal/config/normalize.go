package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig performs canonicalization on string, enumerated and locale fields
// prior to default application. It mutates the provided config in-place. Unknown
// enumeration values are left untouched so validation can name them.
func NormalizeConfig(c *SiteConfig) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeSite(c, res)
	normalizeI18n(&c.I18n, res)
	normalizeMarkdown(&c.Markdown, res)
	normalizeThemeConfig(&c.ThemeConfig, res)
	for _, list := range []*[]PluginEntry{&c.Presets, &c.Themes, &c.Plugins} {
		for i := range *list {
			(*list)[i].Name = strings.TrimSpace((*list)[i].Name)
		}
	}
	return res, nil
}

func normalizeSite(c *SiteConfig, res *NormalizationResult) {
	for _, s := range []*string{&c.Title, &c.Tagline, &c.URL, &c.BaseURL, &c.Favicon, &c.OrganizationName, &c.ProjectName} {
		*s = strings.TrimSpace(*s)
	}
	normalizeSeverity("onBrokenLinks", &c.OnBrokenLinks, res)
	normalizeSeverity("onBrokenMarkdownLinks", &c.OnBrokenMarkdownLinks, res)
	normalizeSeverity("onDuplicateRoutes", &c.OnDuplicateRoutes, res)
	c.StaticDirectories = trimStringSlice(c.StaticDirectories)
}

func normalizeSeverity(field string, s *ReportingSeverity, res *NormalizationResult) {
	if *s == "" {
		return
	}
	if norm := NormalizeReportingSeverity(string(*s)); norm != "" && norm != *s {
		res.Warnings = append(res.Warnings, warnChanged(field, *s, norm))
		*s = norm
	}
}

func normalizeI18n(i *I18nConfig, res *NormalizationResult) {
	i.DefaultLocale = canonicalLocale("i18n.defaultLocale", i.DefaultLocale, res)
	locales := make([]string, 0, len(i.Locales))
	for idx, l := range trimStringSlice(i.Locales) {
		locales = append(locales, canonicalLocale(fmt.Sprintf("i18n.locales[%d]", idx), l, res))
	}
	i.Locales = dedupeStringSlice("i18n.locales", locales, res)
}

// canonicalLocale rewrites a BCP 47 tag in its canonical casing (pt-br -> pt-BR).
// Unparseable tags are returned trimmed and rejected later by validation.
func canonicalLocale(field, raw string, res *NormalizationResult) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return t
	}
	tag, err := language.Parse(t)
	if err != nil {
		return t
	}
	if canon := tag.String(); canon != t {
		res.Warnings = append(res.Warnings, warnChanged(field, t, canon))
		return canon
	}
	return t
}

func normalizeMarkdown(m *MarkdownConfig, res *NormalizationResult) {
	if m.Format == "" {
		return
	}
	if f := NormalizeMarkdownFormat(string(m.Format)); f != "" && f != m.Format {
		res.Warnings = append(res.Warnings, warnChanged("markdown.format", m.Format, f))
		m.Format = f
	}
}

func normalizeThemeConfig(t *ThemeConfig, res *NormalizationResult) {
	if t.Footer.Style != "" {
		if s := NormalizeFooterStyle(string(t.Footer.Style)); s != "" && s != t.Footer.Style {
			res.Warnings = append(res.Warnings, warnChanged("themeConfig.footer.style", t.Footer.Style, s))
			t.Footer.Style = s
		}
	}
	for i := range t.Navbar.Items {
		item := &t.Navbar.Items[i]
		if item.Position == "" {
			continue
		}
		if p := NormalizeNavbarPosition(string(item.Position)); p != "" && p != item.Position {
			res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("themeConfig.navbar.items[%d].position", i), item.Position, p))
			item.Position = p
		}
	}
	t.Prism.AdditionalLanguages = trimStringSlice(t.Prism.AdditionalLanguages)
}

func warnChanged(field string, from, to interface{}) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
