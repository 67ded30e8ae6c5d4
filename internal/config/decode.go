package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Format is the encoding of a static site definition.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ValidExtensions lists the file extensions Load understands.
var ValidExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// FormatFromPath derives the definition format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat accepts a format name or file extension.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported definition format %q (supported: yaml, json, toml)", raw)
	}
}

// decodeToMap parses the raw definition into a generic map.
func decodeToMap(data []byte, format Format) (map[string]any, error) {
	m := make(map[string]any)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unsupported definition format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// pluginListKeys are the definition fields holding ordered plugin entries.
var pluginListKeys = []string{"presets", "themes", "plugins"}

// compactPluginLists drops null and false entries, which conditional definitions
// use to switch a plugin off.
func compactPluginLists(raw map[string]any) {
	for _, key := range pluginListKeys {
		list, ok := raw[key].([]any)
		if !ok {
			continue
		}
		out := make([]any, 0, len(list))
		for _, e := range list {
			if e == nil {
				continue
			}
			if b, ok := e.(bool); ok && !b {
				continue
			}
			out = append(out, e)
		}
		raw[key] = out
	}
}

var pluginEntryType = reflect.TypeOf(PluginEntry{})

// pluginEntryHook accepts the bare-string and [name, options] tuple forms of a plugin entry.
func pluginEntryHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != pluginEntryType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return map[string]any{"name": v}, nil
	case []any:
		if len(v) == 0 || len(v) > 2 {
			return nil, fmt.Errorf("plugin tuple must be [name] or [name, options], got %d elements", len(v))
		}
		name, err := cast.ToStringE(v[0])
		if err != nil {
			return nil, fmt.Errorf("plugin name: %w", err)
		}
		out := map[string]any{"name": name}
		if len(v) == 2 && v[1] != nil {
			out["options"] = v[1]
		}
		return out, nil
	default:
		return data, nil
	}
}

// decodeSiteConfig maps the generic definition onto SiteConfig, rejecting unknown fields.
func decodeSiteConfig(raw map[string]any) (*SiteConfig, error) {
	compactPluginLists(raw)

	var cfg SiteConfig
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(pluginEntryHook),
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &cfg,
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "create definition decoder").Fatal().Build()
	}
	if err := dec.Decode(raw); err != nil {
		return nil, ferrors.ConfigError("malformed site definition").
			WithField(decodeErrorField(err)).
			WithCause(err).
			Build()
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return nil, ferrors.ConfigError("unknown field (custom values belong under customFields)").
			WithField(md.Unused[0]).
			WithContext("unknown_fields", md.Unused).
			Build()
	}
	canonicalizeGenerics(&cfg)
	return &cfg, nil
}

// decodeErrorField returns the field named by the first mapstructure error,
// which quotes it as in "'markdown.mermaid' expected type 'bool'".
func decodeErrorField(err error) string {
	var merr *mapstructure.Error
	if !errors.As(err, &merr) || len(merr.Errors) == 0 {
		return ""
	}
	msgs := append([]string(nil), merr.Errors...)
	sort.Strings(msgs)
	msg := msgs[0]
	if !strings.HasPrefix(msg, "'") {
		return ""
	}
	end := strings.Index(msg[1:], "'")
	if end <= 0 {
		return ""
	}
	return msg[1 : end+1]
}

// DecodeOptions decodes a plugin options map into a typed struct, rejecting unknown keys.
// field names the entry in error messages (e.g. "presets[0].options").
func DecodeOptions(field string, options map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "create options decoder").Fatal().Build()
	}
	if err := dec.Decode(options); err != nil {
		return ferrors.ConfigError("invalid options").WithField(field).WithCause(err).Build()
	}
	return nil
}
