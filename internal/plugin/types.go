package plugin

import (
	"fmt"
	"strings"
)

// Kind identifies which definition list an entry belongs to.
type Kind string

const (
	// KindPreset bundles themes and plugins behind a single entry.
	KindPreset Kind = "preset"

	// KindTheme provides layout components and styling.
	KindTheme Kind = "theme"

	// KindPlugin provides content sources and build features.
	KindPlugin Kind = "plugin"
)

// Kinds lists all kinds in resolution order.
var Kinds = []Kind{KindPreset, KindTheme, KindPlugin}

// IsValid returns true if the kind is recognized.
func (k Kind) IsValid() bool {
	switch k {
	case KindPreset, KindTheme, KindPlugin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ListField returns the definition field holding entries of this kind ("presets").
func (k Kind) ListField() string {
	return string(k) + "s"
}

// ParseKind accepts a kind name in singular or plural form.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "s"))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown plugin kind %q (allowed: preset|theme|plugin)", raw)
	}
	return k, nil
}

// Capability describes optional features an instance provides.
type Capability string

const (
	// CapabilityContent indicates the instance serves documents from a directory.
	CapabilityContent Capability = "content"

	// CapabilitySearch indicates the instance provides search functionality.
	CapabilitySearch Capability = "search"

	// CapabilityMermaid indicates the instance renders Mermaid diagrams.
	CapabilityMermaid Capability = "mermaid"

	// CapabilityRedirects indicates the instance emits client-side redirects.
	CapabilityRedirects Capability = "redirects"

	// CapabilitySitemap indicates the instance writes a sitemap.
	CapabilitySitemap Capability = "sitemap"
)

// String returns the string representation of the capability.
func (c Capability) String() string {
	return string(c)
}
