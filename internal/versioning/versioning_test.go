package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

const docsField = "presets[0].options.docs.versions"

func TestValidate_TwoEmptyPaths(t *testing.T) {
	err := Validate(docsField, []Version{
		{Key: "current", Path: ""},
		{Key: "1.x", Path: ""},
	})
	require.Error(t, err)
	assert.True(t, ferrors.IsVersioningConflictError(err))
	assert.Contains(t, err.Error(), `"1.x"`)
	assert.Contains(t, err.Error(), `"current"`)
	assert.Contains(t, err.Error(), docsField)
}

func TestValidate_Paths(t *testing.T) {
	tests := []struct {
		name     string
		versions []Version
		conflict bool
	}{
		{"single default", []Version{{Key: "current"}}, false},
		{"default plus prefixed", []Version{{Key: "current"}, {Key: "1.x", Path: "v1"}}, false},
		{"similar names", []Version{{Key: "1.x", Path: "v1"}, {Key: "10.x", Path: "v10"}}, false},
		{"equal paths", []Version{{Key: "1.x", Path: "v1"}, {Key: "1.0", Path: "/v1/"}}, true},
		{"nested paths", []Version{{Key: "1.x", Path: "v1"}, {Key: "1.x-beta", Path: "v1/beta"}}, true},
		{"slash is root", []Version{{Key: "current", Path: "/"}, {Key: "1.x", Path: ""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(docsField, tt.versions)
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.IsVersioningConflictError(err), "got %v", err)
		})
	}
}

func TestValidate_ConfigErrors(t *testing.T) {
	err := Validate(docsField, []Version{{Key: "1.x", Path: "v1", Banner: "loud"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))

	err = Validate(docsField, []Version{{Key: "", Path: "v1"}})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestValidateSelection(t *testing.T) {
	versions := []Version{{Key: "current", Path: "next"}, {Key: "1.x"}}
	field := "presets[0].options.docs"

	assert.NoError(t, ValidateSelection(field, versions, "1.x", nil))
	assert.NoError(t, ValidateSelection(field, versions, "", []string{"current"}))

	err := ValidateSelection(field, versions, "2.x", nil)
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, field+".lastVersion", ce.Field())

	err = ValidateSelection(field, versions, "", []string{"current", "0.x"})
	require.Error(t, err)
	ce, _ = ferrors.AsClassified(err)
	assert.Equal(t, field+".onlyIncludeVersions[1]", ce.Field())

	err = ValidateSelection(field, versions, "1.x", []string{"current"})
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestRoutesAndMatch(t *testing.T) {
	versions := []Version{
		{Key: "current", Label: "Next", Path: ""},
		{Key: "1.x", Label: "1.x", Path: "v1"},
		{Key: "1.x-beta", Label: "1.x beta", Path: "v1-beta"},
	}
	routes := Routes("/site/", "/", versions)
	require.Len(t, routes, 3)
	assert.Equal(t, "/site/v1-beta/", routes[0].Prefix)
	assert.Equal(t, "/site/v1/", routes[1].Prefix)
	assert.Equal(t, "/site/", routes[2].Prefix)
	assert.Equal(t, "current", routes[2].Version.Key)

	tests := map[string]string{
		"/site/v1/getting-started": "1.x",
		"/site/v1":                 "1.x",
		"/site/v1-beta/intro":      "1.x-beta",
		"/site/v10/intro":          "current",
		"/site/":                   "current",
		"site/destinations/":       "current",
	}
	for path, want := range tests {
		r, ok := Match(routes, path)
		require.True(t, ok, path)
		assert.Equal(t, want, r.Version.Key, path)
	}

	_, ok := Match(routes, "/other/")
	assert.False(t, ok)
}

func TestRoutes_RouteBasePath(t *testing.T) {
	routes := Routes("/", "docs", []Version{{Key: "current"}, {Key: "2.x", Path: "2.x"}})
	assert.Equal(t, "/docs/2.x/", routes[0].Prefix)
	assert.Equal(t, "/docs/", routes[1].Prefix)
}

func TestNormalizeBanner(t *testing.T) {
	assert.Equal(t, BannerUnmaintained, NormalizeBanner(" Unmaintained "))
	assert.Equal(t, BannerNone, NormalizeBanner("none"))
	assert.Equal(t, Banner(""), NormalizeBanner("loud"))
}

func TestCleanPath(t *testing.T) {
	for in, want := range map[string]string{"": "/", "/": "/", "docs": "/docs/", "/docs/v1": "/docs/v1/", "/docs/": "/docs/"} {
		assert.Equal(t, want, CleanPath(in), in)
	}
}

func TestCompareKeys(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"10.x", "9.x", 1},
		{"9.x", "10.x", -1},
		{"1.x", "1.x", 0},
		{"2.0.10", "2.0.9", 1},
		{"1.x-beta", "1.x", 1},
		{"v2", "v10", -1},
		{"01.x", "1.x", -1},
		{"alpha", "beta", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareKeys(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
