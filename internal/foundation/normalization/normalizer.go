// Package normalization maps loosely written enum values onto their canonical form.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization with error handling.
type Normalizer[T ~string] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string // canonical values, cached for error messages
}

// NewNormalizer creates a normalizer for the given canonical values. aliases maps
// extra accepted spellings to a canonical value. Matching ignores case and
// surrounding whitespace.
func NewNormalizer[T ~string](values []T, aliases map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values)+len(aliases))
	validKeys := make([]string, 0, len(values))

	for _, v := range values {
		key := defaultNormalization(string(v))
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	for k, v := range aliases {
		normalized[defaultNormalization(k)] = v
	}

	// Sort keys for consistent error messages
	sort.Strings(validKeys)

	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Normalize converts a string to the enum type.
// Returns the default value if the string is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, exists := n.validValues[defaultNormalization(raw)]; exists {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError converts a string to the enum type.
// Returns an error listing the valid values if the string is not recognized.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, exists := n.validValues[defaultNormalization(raw)]; exists {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (allowed: %s)", raw, n.Allowed())
}

// ValidKeys returns the canonical values in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

// Allowed returns the canonical values joined for error messages ("a|b|c").
func (n *Normalizer[T]) Allowed() string {
	return strings.Join(n.validKeys, "|")
}

func defaultNormalization(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
