package plugin

import (
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Context gives constructors access to the site definition being resolved.
// It is passed by value-copy through WithField so each entry sees its own field.
type Context struct {
	// Config is the validated site definition. Constructors must not mutate it.
	Config *config.SiteConfig

	// Logger provides structured logging for resolution.
	Logger *slog.Logger

	// Field is the definition field of the entry being constructed (e.g., "themes[1]").
	Field string

	// OptionsField is the field holding the entry's options. It differs from
	// Field+".options" for entries contributed by a preset section.
	OptionsField string
}

// NewContext creates a resolution context for cfg.
func NewContext(cfg *config.SiteConfig, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{Config: cfg, Logger: logger}
}

// WithField returns a copy of the context for the entry at field.
func (c *Context) WithField(field string) *Context {
	return c.WithFields(field, "")
}

// WithFields returns a copy of the context for an entry whose options live at
// optionsField. An empty optionsField means field+".options".
func (c *Context) WithFields(field, optionsField string) *Context {
	cp := *c
	cp.Field = field
	cp.OptionsField = optionsField
	if cp.OptionsField == "" {
		cp.OptionsField = field + ".options"
	}
	return &cp
}

// DecodeOptions decodes an options map into out, rejecting unknown keys.
func (c *Context) DecodeOptions(options map[string]any, out any) error {
	return config.DecodeOptions(c.OptionsField, options, out)
}

// OptionField returns the dotted field of an option of the current entry.
func (c *Context) OptionField(key string) string {
	return c.OptionsField + "." + key
}

// Meta builds instance metadata for the current entry.
func (c *Context) Meta(kind Kind, name, id string, caps ...Capability) Metadata {
	if id == "" {
		id = DefaultID
	}
	return Metadata{Name: name, ID: id, Kind: kind, Field: c.Field, Capabilities: caps}
}
