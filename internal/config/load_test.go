package config

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

const minimalYAML = "title: Docs\nurl: https://example.com\nbaseUrl: /\n"

func requireConfigField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, ferrors.IsConfigError(err), "expected ConfigError, got %v", err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, field, ce.Field())
	assert.Contains(t, err.Error(), field)
}

func TestLoadBytes_Minimal(t *testing.T) {
	cfg, err := LoadBytes([]byte(minimalYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, "/", cfg.BaseURL)
	assert.Equal(t, SeverityThrow, cfg.OnBrokenLinks)
	assert.Equal(t, SeverityWarn, cfg.OnBrokenMarkdownLinks)
	assert.Equal(t, SeverityWarn, cfg.OnDuplicateRoutes)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, []string{"en"}, cfg.I18n.Locales)
	assert.Equal(t, MarkdownFormatMDX, cfg.Markdown.Format)
	assert.Equal(t, []string{"static"}, cfg.StaticDirectories)
	assert.Equal(t, "github", cfg.ThemeConfig.Prism.Theme)
	assert.Equal(t, "dracula", cfg.ThemeConfig.Prism.DarkTheme)
	assert.Equal(t, FooterDark, cfg.ThemeConfig.Footer.Style)
}

func TestLoadBytes_BaseURLWithoutSlashes(t *testing.T) {
	_, err := LoadBytes([]byte("title: Docs\nurl: https://example.com\nbaseUrl: docs\n"), FormatYAML)
	requireConfigField(t, err, "baseUrl")
	assert.True(t, ferrors.HasSeverity(err, ferrors.SeverityFatal))
}

func TestLoadBytes_DefaultLocaleNotListed(t *testing.T) {
	data := minimalYAML + "i18n:\n  defaultLocale: fr\n  locales: [en]\n"
	_, err := LoadBytes([]byte(data), FormatYAML)
	requireConfigField(t, err, "i18n.defaultLocale")
}

func TestLoadBytes_RequiredFields(t *testing.T) {
	cases := map[string]string{
		"title":   "url: https://example.com\nbaseUrl: /\n",
		"url":     "title: Docs\nbaseUrl: /\n",
		"baseUrl": "title: Docs\nurl: https://example.com\n",
	}
	for field, data := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := LoadBytes([]byte(data), FormatYAML)
			requireConfigField(t, err, field)
		})
	}
}

func TestLoadBytes_UnknownField(t *testing.T) {
	_, err := LoadBytes([]byte(minimalYAML+"sidebarz: true\n"), FormatYAML)
	requireConfigField(t, err, "sidebarz")
}

func TestLoadBytes_MalformedDefinition(t *testing.T) {
	_, err := LoadBytes([]byte("title: [unterminated"), FormatYAML)
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestLoadBytes_TypeMismatchNamesField(t *testing.T) {
	tests := map[string]string{
		minimalYAML + "i18n: en\n":                 "i18n",
		minimalYAML + "markdown: {mermaid: [1]}\n": "markdown.mermaid",
	}
	adapter := ferrors.NewCLIErrorAdapter(false, nil)
	for data, field := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := LoadBytes([]byte(data), FormatYAML)
			requireConfigField(t, err, field)
			msg := adapter.FormatError(err)
			assert.True(t, strings.HasPrefix(msg, "ConfigError: "+field+": malformed site definition: "), msg)
		})
	}

	_, err := LoadBytes([]byte("title: [unterminated"), FormatYAML)
	assert.Contains(t, adapter.FormatError(err), "yaml: ")
}

func TestLoadBytes_ThemeConfigExtraPreserved(t *testing.T) {
	data := minimalYAML + "themeConfig:\n  announcementBar:\n    id: beta\n  navbar:\n    items:\n      - to: /intro\n        label: Intro\n        className: highlight\n"
	cfg, err := LoadBytes([]byte(data), FormatYAML)
	require.NoError(t, err)

	require.Contains(t, cfg.ThemeConfig.Extra, "announcementBar")
	require.Len(t, cfg.ThemeConfig.Navbar.Items, 1)
	assert.Equal(t, "highlight", cfg.ThemeConfig.Navbar.Items[0].Extra["className"])
}

func TestLoadBytes_PluginEntryForms(t *testing.T) {
	data := minimalYAML + `presets:
  - classic
  - [classic, {blog: false}]
  - name: "@docusaurus/preset-classic"
    options:
      docs: false
  - false
  - null
themes:
  - ["@docusaurus/theme-mermaid"]
`
	cfg, err := LoadBytes([]byte(data), FormatYAML)
	require.NoError(t, err)

	require.Len(t, cfg.Presets, 3)
	assert.Equal(t, "classic", cfg.Presets[0].Name)
	assert.Empty(t, cfg.Presets[0].Options)
	assert.Equal(t, "classic", cfg.Presets[1].Name)
	assert.Equal(t, false, cfg.Presets[1].Options["blog"])
	assert.Equal(t, "@docusaurus/preset-classic", cfg.Presets[2].Name)

	require.Len(t, cfg.Themes, 1)
	assert.Equal(t, "@docusaurus/theme-mermaid", cfg.Themes[0].Name)
}

func TestLoadBytes_PluginTupleTooLong(t *testing.T) {
	data := minimalYAML + "plugins:\n  - [a, {}, {}]\n"
	_, err := LoadBytes([]byte(data), FormatYAML)
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestLoadBytes_EmptyPluginName(t *testing.T) {
	data := minimalYAML + "plugins:\n  - name: \"  \"\n"
	_, err := LoadBytes([]byte(data), FormatYAML)
	requireConfigField(t, err, "plugins[0].name")
}

func TestLoadBytes_LocaleCanonicalization(t *testing.T) {
	data := minimalYAML + "i18n:\n  defaultLocale: EN\n  locales: [en, pt-br, ' en ']\n"
	cfg, err := LoadBytes([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, []string{"en", "pt-BR"}, cfg.I18n.Locales)
}

func TestLoadBytes_InvalidLocale(t *testing.T) {
	data := minimalYAML + "i18n:\n  defaultLocale: en\n  locales: [en, 'not a tag']\n"
	_, err := LoadBytes([]byte(data), FormatYAML)
	requireConfigField(t, err, "i18n.locales[1]")
}

func TestLoadBytes_SeverityAliases(t *testing.T) {
	data := minimalYAML + "onBrokenLinks: Error\nonBrokenMarkdownLinks: warning\n"
	cfg, err := LoadBytes([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, SeverityThrow, cfg.OnBrokenLinks)
	assert.Equal(t, SeverityWarn, cfg.OnBrokenMarkdownLinks)

	_, err = LoadBytes([]byte(minimalYAML+"onDuplicateRoutes: explode\n"), FormatYAML)
	requireConfigField(t, err, "onDuplicateRoutes")
}

func TestLoadBytes_EnvExpansion(t *testing.T) {
	t.Setenv("DOCSITE_TEST_URL", "https://env.example.com")
	cfg, err := LoadBytes([]byte("title: Docs\nurl: ${DOCSITE_TEST_URL}\nbaseUrl: /\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.URL)
}

func TestLoadFS_FormatsAndEnvFile(t *testing.T) {
	const key = "DOCSITE_TEST_ORG"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/.env", []byte(key+"=acme\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/site/docsite.json",
		[]byte(`{"title":"Docs","url":"https://example.com","baseUrl":"/docs/","organizationName":"${DOCSITE_TEST_ORG}"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/site/docsite.toml",
		[]byte("title = \"Docs\"\nurl = \"https://example.com\"\nbaseUrl = \"/\"\n\n[markdown]\nmermaid = true\n"), 0o644))

	jcfg, err := LoadFS(fs, "/site/docsite.json")
	require.NoError(t, err)
	assert.Equal(t, "/docs/", jcfg.BaseURL)
	assert.Equal(t, "acme", jcfg.OrganizationName)

	tcfg, err := LoadFS(fs, "/site/docsite.toml")
	require.NoError(t, err)
	assert.True(t, tcfg.Markdown.Mermaid)
}

func TestLoadBytes_BareDollarKept(t *testing.T) {
	t.Setenv("DOCSITE_TEST_PRICE", "ignored")
	cfg, err := LoadBytes([]byte(minimalYAML+"tagline: Costs $5, or $DOCSITE_TEST_PRICE\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Costs $5, or $DOCSITE_TEST_PRICE", cfg.Tagline)
}

func TestLoadFS_EnvFileLeavesProcessEnvAlone(t *testing.T) {
	const key = "DOCSITE_TEST_TITLE"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s/docsite.yaml", []byte("title: ${DOCSITE_TEST_TITLE}\nurl: https://example.com\nbaseUrl: /\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/s/.env", []byte(key+"=first\n"), 0o644))

	cfg, err := LoadFS(fs, "/s/docsite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Title)
	_, set := os.LookupEnv(key)
	assert.False(t, set)

	require.NoError(t, afero.WriteFile(fs, "/s/.env", []byte(key+"=second\n"), 0o644))
	cfg, err = LoadFS(fs, "/s/docsite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Title)
}

func TestLoadFS_EnvLocalDoesNotOverrideEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s/docsite.yaml", []byte(minimalYAML+"projectName: ${DOCSITE_TEST_LOCAL}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/s/.env", []byte("DOCSITE_TEST_LOCAL=env\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/s/.env.local", []byte("DOCSITE_TEST_LOCAL=local\n"), 0o644))

	cfg, err := LoadFS(fs, "/s/docsite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.ProjectName)
}

func TestLoadFS_ProcessEnvWinsOverEnvFile(t *testing.T) {
	t.Setenv("DOCSITE_TEST_PROJECT", "from-process")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s/.env", []byte("DOCSITE_TEST_PROJECT=from-file\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/s/docsite.yaml", []byte(minimalYAML+"projectName: ${DOCSITE_TEST_PROJECT}\n"), 0o644))

	cfg, err := LoadFS(fs, "/s/docsite.yaml")
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.ProjectName)
}

func TestLoadFS_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadFS(fs, "/missing.yaml")
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))

	_, err = LoadFS(fs, "/site.ini")
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("title: Docs\nurl: example.com\nbaseUrl: /\n"), 0o644))
	_, err = LoadFS(fs, "/bad.yaml")
	requireConfigField(t, err, "url")
	ce, _ := ferrors.AsClassified(err)
	path, _ := ce.Context().GetString(ferrors.ContextPath)
	assert.Equal(t, "/bad.yaml", path)
}

func TestRoundTrip_AllFormats(t *testing.T) {
	data, err := Marshal(ExampleConfig(), FormatYAML)
	require.NoError(t, err)
	first, err := LoadBytes(data, FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			out, err := Marshal(first, format)
			require.NoError(t, err)
			second, err := LoadBytes(out, format)
			require.NoError(t, err, "reload of:\n%s", out)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip_FreeFormValues(t *testing.T) {
	data := minimalYAML + `customFields:
  gone: null
  count: 3
  ratio: 0.5
  whole: 2.0
  empty: {}
  list: [1, null, two]
themeConfig:
  announcementBar: {id: notice, content: null}
plugins:
  - [sitemap, {priority: 0.7, changefreq: null}]
  - [content-pages, {}]
`
	first, err := LoadBytes([]byte(data), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"count": 3, "ratio": 0.5, "whole": 2, "empty": map[string]any{}, "list": []any{1, "two"},
	}, first.CustomFields)
	assert.Equal(t, map[string]any{"priority": 0.7}, first.Plugins[0].Options)
	assert.Nil(t, first.Plugins[1].Options)

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			out, err := Marshal(first, format)
			require.NoError(t, err)
			second, err := LoadBytes(out, format)
			require.NoError(t, err, "reload of:\n%s", out)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("round trip mismatch (-first +second):\n%s", diff)
			}
			again, err := Marshal(second, format)
			require.NoError(t, err)
			third, err := LoadBytes(again, format)
			require.NoError(t, err)
			if diff := cmp.Diff(second, third); diff != "" {
				t.Fatalf("second round trip mismatch (-second +third):\n%s", diff)
			}
		})
	}
}

func TestMarshal_BarePluginEntry(t *testing.T) {
	cfg, err := LoadBytes([]byte(minimalYAML+"themes:\n  - name: \"@docusaurus/theme-mermaid\"\nmarkdown:\n  mermaid: true\n"), FormatYAML)
	require.NoError(t, err)
	out, err := Marshal(cfg, FormatYAML)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	themes, ok := generic["themes"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"@docusaurus/theme-mermaid"}, themes)
}
