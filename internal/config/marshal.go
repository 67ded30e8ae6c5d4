package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Marshal serializes cfg back into a static definition. YAML is the canonical
// form; JSON and TOML are produced from its generic map so all three share
// field names and plugin entry forms.
func Marshal(cfg *SiteConfig, format Format) ([]byte, error) {
	if cfg == nil {
		return nil, ferrors.InternalError("cannot marshal nil site definition").Build()
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "encode yaml").Fatal().Build()
	}
	if err := enc.Close(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "encode yaml").Fatal().Build()
	}
	if format == FormatYAML {
		return buf.Bytes(), nil
	}

	generic := make(map[string]any)
	if err := yaml.Unmarshal(buf.Bytes(), &generic); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "re-read yaml").Fatal().Build()
	}

	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(generic, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatTOML:
		out, err = toml.Marshal(generic)
	default:
		err = fmt.Errorf("unsupported definition format %q", format)
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, fmt.Sprintf("encode %s", format)).Fatal().Build()
	}
	return out, nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write definition").
			WithContext(ferrors.ContextPath, path).
			WithCause(err).
			Build()
	}
	return nil
}
