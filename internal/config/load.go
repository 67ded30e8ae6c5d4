package config

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// DefaultPath is the definition file looked up when none is given.
const DefaultPath = "docsite.yaml"

// Load reads the site definition from the local filesystem.
func Load(path string) (*SiteConfig, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads the site definition at path from fs. The format follows the file
// extension. Environment files next to the definition supply ${VAR} values the
// process environment does not set.
func LoadFS(fs afero.Fs, path string) (*SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, ferrors.ConfigError("unsupported definition file").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}

	env, err := readEnvFiles(fs, filepath.Dir(path))
	if err != nil {
		slog.Warn("Environment file could not be parsed", logfields.ConfigPath(path), logfields.Error(err))
	}

	if _, err := fs.Stat(path); err != nil {
		return nil, ferrors.ConfigError("definition file not found").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, ferrors.ConfigError("failed to read definition file").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}

	cfg, err := loadBytes(data, format, env)
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext(ferrors.ContextPath, path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadBytes parses an in-memory definition and runs the full pipeline:
// expand, decode, normalize, apply defaults, validate.
func LoadBytes(data []byte, format Format) (*SiteConfig, error) {
	return loadBytes(data, format, nil)
}

func loadBytes(data []byte, format Format, env map[string]string) (*SiteConfig, error) {
	expanded := expandEnv(string(data), env)

	raw, err := decodeToMap([]byte(expanded), format)
	if err != nil {
		return nil, ferrors.ConfigErrorf("failed to parse %s definition", format).WithCause(err).Build()
	}

	cfg, err := decodeSiteConfig(raw)
	if err != nil {
		return nil, err
	}

	// Normalization pass (case-fold enumerations, canonical locale tags)
	if nres, nerr := NormalizeConfig(cfg); nerr != nil {
		return nil, ferrors.WrapError(nerr, ferrors.CategoryInternal, "normalize").Fatal().Build()
	} else if nres != nil {
		for _, w := range nres.Warnings {
			slog.Warn("Definition normalization", slog.String("detail", w))
		}
	}
	// Apply defaults (after normalization so canonical values drive defaults)
	if err := applyDefaults(cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "apply defaults").Fatal().Build()
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
