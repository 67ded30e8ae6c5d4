package site

import (
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/plugin"
)

// Summary describes the loaded site in a few lines for the validate command.
func (s *Site) Summary() string {
	var b strings.Builder
	cfg := s.Config
	fmt.Fprintf(&b, "%s (%s%s)\n", cfg.Title, strings.TrimSuffix(cfg.URL, "/"), cfg.BaseURL)
	fmt.Fprintf(&b, "  locales: %s (default %s)\n", strings.Join(cfg.I18n.Locales, ", "), cfg.I18n.DefaultLocale)
	fmt.Fprintf(&b, "  markdown: format=%s mermaid=%t\n", cfg.Markdown.Format, cfg.Markdown.Mermaid)
	for _, k := range plugin.Kinds {
		writeInstances(&b, k, s.Instances.ByKind(k))
	}
	for _, d := range s.Docs() {
		fmt.Fprintf(&b, "  docs %s: last version %s\n", d.Metadata().ID, d.LastVersion)
		for _, v := range d.Versions {
			fmt.Fprintf(&b, "    %-10s label=%q path=/%s\n", v.Key, v.Label, v.Path)
		}
	}
	return b.String()
}

func writeInstances(w io.Writer, kind plugin.Kind, instances []plugin.Instance) {
	if len(instances) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "  %s:\n", kind.ListField())
	for _, inst := range instances {
		_, _ = fmt.Fprintf(w, "    - %s\n", inst.Metadata())
	}
}
