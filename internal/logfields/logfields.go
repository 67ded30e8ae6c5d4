package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyField      = "field"
	KeyPlugin     = "plugin"
	KeyKind       = "kind"
	KeyIndex      = "index"
	KeyVersion    = "version"
	KeyLocale     = "locale"
	KeyRoute      = "route"
	KeyFile       = "file"
	KeyLink       = "link"
	KeyReloadID   = "reload_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Plugin(name string) slog.Attr    { return slog.String(KeyPlugin, name) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Index(i int) slog.Attr           { return slog.Int(KeyIndex, i) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func ReloadID(id string) slog.Attr    { return slog.String(KeyReloadID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
