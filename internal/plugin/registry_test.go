package plugin

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

type mockInstance struct {
	BaseInstance
	options map[string]any
}

type mockPreset struct {
	BaseInstance
	contributions []Contribution
}

func (p *mockPreset) Expand() []Contribution { return p.contributions }

type failingValidator struct {
	BaseInstance
}

func (f *failingValidator) Validate(ctx *Context) error {
	return ferrors.ConfigError("requires something").WithField(ctx.Field).Build()
}

func mockFactory(kind Kind, name string) Factory {
	return func(ctx *Context, options map[string]any) (Instance, error) {
		id, _ := options["id"].(string)
		return &mockInstance{BaseInstance: BaseInstance{Meta: ctx.Meta(kind, name, id)}, options: options}, nil
	}
}

func testContext(buf *bytes.Buffer) *Context {
	return NewContext(&config.SiteConfig{}, slog.New(slog.NewTextHandler(buf, nil)))
}

// TestRegistryRegister tests registration and duplicate detection.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindTheme, "@docusaurus/theme-classic", mockFactory(KindTheme, "@docusaurus/theme-classic"), "classic-theme"))

	assert.Error(t, r.Register(KindTheme, "@docusaurus/theme-classic", mockFactory(KindTheme, "x")))
	assert.Error(t, r.Register(KindTheme, "other", mockFactory(KindTheme, "other"), "classic-theme"))
	assert.Error(t, r.Register(KindTheme, "", mockFactory(KindTheme, "")))
	assert.Error(t, r.Register(KindTheme, "nil", nil))
	assert.Error(t, r.Register(Kind("publisher"), "x", mockFactory(KindTheme, "x")))

	// Same name under a different kind is fine
	require.NoError(t, r.Register(KindPlugin, "@docusaurus/theme-classic", mockFactory(KindPlugin, "@docusaurus/theme-classic")))
	assert.Equal(t, 2, r.Count())
}

func TestCandidateNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "@docusaurus/preset-classic", "docusaurus-preset-classic"},
		CandidateNames(KindPreset, "classic"))
	assert.Equal(t, []string{"@easyops-cn/docusaurus-theme"}, CandidateNames(KindTheme, "@easyops-cn"))
	assert.Equal(t, []string{"@easyops-cn/docusaurus-search-local", "@easyops-cn/docusaurus-theme-docusaurus-search-local"},
		CandidateNames(KindTheme, "@easyops-cn/docusaurus-search-local"))
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindPreset, "@docusaurus/preset-classic", mockFactory(KindPreset, "@docusaurus/preset-classic")))
	require.NoError(t, r.Register(KindTheme, "@easyops-cn/docusaurus-search-local", mockFactory(KindTheme, "search"), "search-local"))

	for _, name := range []string{"classic", "@docusaurus/preset-classic"} {
		reg, ok := r.Lookup(KindPreset, name)
		require.True(t, ok, name)
		assert.Equal(t, "@docusaurus/preset-classic", reg.Name)
	}

	reg, ok := r.Lookup(KindTheme, "search-local")
	require.True(t, ok)
	assert.Equal(t, "@easyops-cn/docusaurus-search-local", reg.Name)

	_, ok = r.Lookup(KindTheme, "classic")
	assert.False(t, ok)
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindPlugin, "b", mockFactory(KindPlugin, "b")))
	require.NoError(t, r.Register(KindPlugin, "a", mockFactory(KindPlugin, "a"), "alpha"))

	list := r.List(KindPlugin)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, []string{"alpha"}, list[0].Aliases)
	assert.Empty(t, r.List(KindTheme))
}

func TestResolve_UnknownIdentifier(t *testing.T) {
	r := NewRegistry()
	var buf bytes.Buffer
	_, err := r.Resolve(testContext(&buf), KindPreset, []config.PluginEntry{{Name: "unknown-preset"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsPluginResolutionError(err))
	ce, _ := ferrors.AsClassified(err)
	assert.Equal(t, "presets[0]", ce.Field())
	assert.Contains(t, err.Error(), "unknown-preset")
}

func TestResolve_LaterDuplicateOverrides(t *testing.T) {
	r := NewRegistry()
	name := "@easyops-cn/docusaurus-search-local"
	require.NoError(t, r.Register(KindTheme, name, mockFactory(KindTheme, name)))
	require.NoError(t, r.Register(KindTheme, "@docusaurus/theme-mermaid", mockFactory(KindTheme, "@docusaurus/theme-mermaid")))

	var buf bytes.Buffer
	entries := []config.PluginEntry{
		{Name: name, Options: map[string]any{"hashed": false}},
		{Name: "@docusaurus/theme-mermaid"},
		{Name: name, Options: map[string]any{"hashed": true}},
	}
	out, err := r.Resolve(testContext(&buf), KindTheme, entries)
	require.NoError(t, err)
	require.Len(t, out, 2)

	first := out[0].(*mockInstance)
	assert.Equal(t, name, first.Metadata().Name)
	assert.Equal(t, true, first.options["hashed"])
	assert.Equal(t, "themes[2]", first.Metadata().Field)
	assert.Contains(t, buf.String(), "overrides")
}

func TestResolve_DistinctIDsCoexist(t *testing.T) {
	r := NewRegistry()
	name := "@docusaurus/plugin-content-docs"
	require.NoError(t, r.Register(KindPlugin, name, mockFactory(KindPlugin, name)))

	var buf bytes.Buffer
	out, err := r.Resolve(testContext(&buf), KindPlugin, []config.PluginEntry{
		{Name: "content-docs"},
		{Name: "content-docs", Options: map[string]any{"id": "community"}},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestResolve_FactoryErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindPlugin, "plain", func(*Context, map[string]any) (Instance, error) {
		return nil, errors.New("boom")
	}))
	require.NoError(t, r.Register(KindPlugin, "bad-meta", func(*Context, map[string]any) (Instance, error) {
		return &mockInstance{}, nil
	}))

	var buf bytes.Buffer
	_, err := r.Resolve(testContext(&buf), KindPlugin, []config.PluginEntry{{Name: "plain"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
	ce, _ := ferrors.AsClassified(err)
	assert.Equal(t, "plugins[0]", ce.Field())

	_, err = r.Resolve(testContext(&buf), KindPlugin, []config.PluginEntry{{Name: "bad-meta"}})
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryInternal, ferrors.GetCategory(err))
}

func TestResolveSite_PresetExpansionOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindPreset, "@docusaurus/preset-classic", func(ctx *Context, _ map[string]any) (Instance, error) {
		return &mockPreset{
			BaseInstance: BaseInstance{Meta: ctx.Meta(KindPreset, "@docusaurus/preset-classic", "")},
			contributions: []Contribution{
				{Kind: KindPlugin, Field: ctx.Field + ".docs", Entry: config.PluginEntry{Name: "content-docs"}},
				{Kind: KindTheme, Field: ctx.Field + ".theme", Entry: config.PluginEntry{Name: "classic"}},
			},
		}, nil
	}))
	require.NoError(t, r.Register(KindPlugin, "@docusaurus/plugin-content-docs", mockFactory(KindPlugin, "@docusaurus/plugin-content-docs")))
	require.NoError(t, r.Register(KindPlugin, "@docusaurus/plugin-client-redirects", mockFactory(KindPlugin, "@docusaurus/plugin-client-redirects")))
	require.NoError(t, r.Register(KindTheme, "@docusaurus/theme-classic", mockFactory(KindTheme, "@docusaurus/theme-classic")))

	cfg := &config.SiteConfig{
		Presets: []config.PluginEntry{{Name: "classic"}},
		Plugins: []config.PluginEntry{{Name: "client-redirects"}},
	}
	var buf bytes.Buffer
	set, err := r.ResolveSite(NewContext(cfg, slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	require.Len(t, set.Plugins, 2)
	assert.Equal(t, "@docusaurus/plugin-content-docs", set.Plugins[0].Metadata().Name)
	assert.Equal(t, "presets[0].docs", set.Plugins[0].Metadata().Field)
	assert.Equal(t, "plugins[0]", set.Plugins[1].Metadata().Field)
	require.Len(t, set.Themes, 1)
	assert.Len(t, set.All(), 4)
	assert.Equal(t, set.Themes, set.ByKind(KindTheme))
}

func TestResolveSite_ValidatorFailure(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(KindTheme, "strict", func(ctx *Context, _ map[string]any) (Instance, error) {
		return &failingValidator{BaseInstance{Meta: ctx.Meta(KindTheme, "strict", "")}}, nil
	}))
	cfg := &config.SiteConfig{Themes: []config.PluginEntry{{Name: "strict"}}}
	var buf bytes.Buffer
	_, err := r.ResolveSite(NewContext(cfg, slog.New(slog.NewTextHandler(&buf, nil))))
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, "themes[0]", ce.Field())
}
