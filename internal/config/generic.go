package config

import (
	"math"

	"github.com/spf13/cast"
)

// canonicalizeGenerics rewrites the free-form parts of the definition
// (customFields, plugin options, extra theme config) into a shape that all
// three formats reproduce: null values are dropped (TOML has no null), whole
// numbers become int, and an empty top-level map becomes nil.
func canonicalizeGenerics(cfg *SiteConfig) {
	cfg.CustomFields = canonicalMap(cfg.CustomFields)
	cfg.ThemeConfig.Extra = canonicalMap(cfg.ThemeConfig.Extra)
	for _, list := range [][]PluginEntry{cfg.Presets, cfg.Themes, cfg.Plugins} {
		for i := range list {
			list[i].Options = canonicalMap(list[i].Options)
		}
	}
}

func canonicalMap(m map[string]any) map[string]any {
	out := canonicalNested(m)
	if len(out) == 0 {
		return nil
	}
	return out
}

func canonicalNested(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = canonicalValue(v)
	}
	return out
}

func canonicalValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return canonicalNested(t)
	case map[any]any:
		return canonicalNested(cast.ToStringMap(t))
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if e != nil {
				out = append(out, canonicalValue(e))
			}
		}
		return out
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToInt(t)
	case float32:
		return canonicalFloat(float64(t))
	case float64:
		return canonicalFloat(t)
	default:
		return v
	}
}

// canonicalFloat keeps fractions as float64 and turns whole values into int,
// since JSON reads every number as float64 and YAML writes 2.0 as 2.
func canonicalFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int(f)
	}
	return f
}
