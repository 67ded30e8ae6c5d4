// Package plugin resolves the preset, theme and plugin identifiers of a site
// definition into configured instances. Constructors are registered in a
// Registry at startup; resolution fails fast on identifiers nothing answers to.
package plugin

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// DefaultID is the instance id used when an entry does not set one.
const DefaultID = "default"

// Instance is a configured preset, theme or plugin.
type Instance interface {
	// Metadata returns the instance's identity and capabilities.
	Metadata() Metadata
}

// Validator is implemented by instances that check themselves against the
// whole site definition once every list has been resolved.
type Validator interface {
	Validate(ctx *Context) error
}

// Expander is implemented by presets. The returned contributions are resolved
// ahead of the explicit theme and plugin lists.
type Expander interface {
	Expand() []Contribution
}

// PathReferencer is implemented by instances whose options point at files.
type PathReferencer interface {
	ReferencedPaths() []PathRef
}

// Contribution is an entry a preset adds to the theme or plugin list.
// Field is the preset section holding the entry's options.
type Contribution struct {
	Kind  Kind
	Field string
	Entry config.PluginEntry
}

// PathRef is a file referenced from plugin options.
type PathRef struct {
	Field string
	Path  string
	// Static marks paths resolved against the static directories instead of the site root.
	Static bool
}

// Metadata describes an instance's identity and capabilities.
type Metadata struct {
	// Name is the canonical identifier (e.g., "@docusaurus/plugin-content-docs").
	Name string

	// ID distinguishes several instances of the same plugin (DefaultID when unset).
	ID string

	// Kind identifies the list the instance was resolved from.
	Kind Kind

	// Field is the definition field of the entry (e.g., "presets[0].docs").
	Field string

	// Capabilities lists optional features this instance provides.
	Capabilities []Capability
}

// Key identifies an instance for override detection.
func (m Metadata) Key() string {
	id := m.ID
	if id == "" {
		id = DefaultID
	}
	return string(m.Kind) + ":" + m.Name + "#" + id
}

// String returns a human-readable representation of the metadata.
func (m Metadata) String() string {
	if m.ID == "" || m.ID == DefaultID {
		return fmt.Sprintf("%s (%s)", m.Name, m.Kind)
	}
	return fmt.Sprintf("%s#%s (%s)", m.Name, m.ID, m.Kind)
}

// HasCapability reports whether the instance provides c.
func (m Metadata) HasCapability(c Capability) bool {
	return slices.Contains(m.Capabilities, c)
}

// Validate checks if the metadata is valid.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("instance name is required")
	}
	if !m.Kind.IsValid() {
		return fmt.Errorf("invalid plugin kind: %s", m.Kind)
	}
	return nil
}

// BaseInstance provides the Metadata method for embedding.
type BaseInstance struct {
	Meta Metadata
}

// Metadata returns the embedded metadata.
func (b *BaseInstance) Metadata() Metadata {
	return b.Meta
}
