package config

import "fmt"

// MarshalYAML writes entries without options in the bare-string form.
func (e PluginEntry) MarshalYAML() (any, error) {
	if len(e.Options) == 0 {
		return e.Name, nil
	}
	type plain PluginEntry
	return plain(e), nil
}

// String returns the identifier, or "name(n options)" when options are set.
func (e PluginEntry) String() string {
	if len(e.Options) == 0 {
		return e.Name
	}
	return fmt.Sprintf("%s(%d options)", e.Name, len(e.Options))
}

// Option returns a top-level option value.
func (e PluginEntry) Option(key string) (any, bool) {
	if e.Options == nil {
		return nil, false
	}
	v, ok := e.Options[key]
	return v, ok
}
