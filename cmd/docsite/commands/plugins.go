package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/docsite/internal/plugin"
	"git.home.luguber.info/inful/docsite/internal/plugin/builtin"
)

// PluginsCmd implements the 'plugins' command.
type PluginsCmd struct {
	Kind string `short:"k" help:"Only list one kind" enum:",preset,theme,plugin" default:""`
}

func (p *PluginsCmd) Run(g *Global, _ *CLI) error {
	kinds := plugin.Kinds
	if p.Kind != "" {
		k, err := plugin.ParseKind(p.Kind)
		if err != nil {
			return err
		}
		kinds = []plugin.Kind{k}
	}

	registry := builtin.NewRegistry()
	w := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tNAME\tALIASES")
	for _, k := range kinds {
		for _, reg := range registry.List(k) {
			aliases := "-"
			if len(reg.Aliases) > 0 {
				aliases = strings.Join(reg.Aliases, ", ")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", k, reg.Name, aliases)
		}
	}
	return w.Flush()
}
