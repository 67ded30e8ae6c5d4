package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestInit_WritesLoadableDefinition(t *testing.T) {
	for _, name := range []string{"docsite.yaml", "docsite.json", "docsite.toml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			require.NoError(t, Init(path, false))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "Compose Destinations", cfg.Title)
			assert.Equal(t, "https://composedestinations.rafaelcosta.xyz", cfg.URL)
			assert.Equal(t, []string{"kotlin"}, cfg.ThemeConfig.Prism.AdditionalLanguages)
			require.Len(t, cfg.Presets, 1)
			assert.Equal(t, "classic", cfg.Presets[0].Name)

			_, err = os.Stat(filepath.Join(dir, "src", "css", "custom.css"))
			assert.NoError(t, err)
		})
	}
}

func TestInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	err := Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
	data, _ := os.ReadFile(path)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, Init(path, true))
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "Compose Destinations")
}
