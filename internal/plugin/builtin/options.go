package builtin

import (
	"fmt"

	"github.com/spf13/cast"
)

// stringList accepts a single string or a list of strings.
func stringList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		if t == "" {
			return nil, nil
		}
		return []string{t}, nil
	default:
		return cast.ToStringSliceE(v)
	}
}

// sectionOptions interprets a preset section that is either an options map or
// false. enabled is false when the section is switched off.
func sectionOptions(v any) (options map[string]any, enabled bool, err error) {
	switch t := v.(type) {
	case nil:
		return nil, true, nil
	case bool:
		if t {
			return nil, true, nil
		}
		return nil, false, nil
	default:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, false, fmt.Errorf("expected options or false: %w", err)
		}
		return m, true, nil
	}
}

// countOrAll accepts a positive count or the string "ALL" (returned as -1).
func countOrAll(v any, fallback int) (int, error) {
	if v == nil {
		return fallback, nil
	}
	if s, ok := v.(string); ok && s == "ALL" {
		return -1, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("expected a number or \"ALL\": %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}
	return n, nil
}
