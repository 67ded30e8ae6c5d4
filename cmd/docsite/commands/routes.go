package commands

import (
	"fmt"
	"text/tabwriter"
)

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct {
	Match string `arg:"" optional:"" help:"Show which docs instance and version serve this URL path"`
}

func (r *RoutesCmd) Run(g *Global, root *CLI) error {
	s, err := loadSite(g, root)
	if err != nil {
		return err
	}

	if r.Match != "" {
		docs, route, ok := s.Match(r.Match)
		if !ok {
			_, _ = fmt.Fprintf(g.out(), "%s: not served by any docs instance\n", r.Match)
			return nil
		}
		_, _ = fmt.Fprintf(g.out(), "%s: docs %s, version %s (%s) under %s\n",
			r.Match, docs.Metadata().ID, route.Version.Key, route.Version.Label, route.Prefix)
		return nil
	}

	w := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INSTANCE\tVERSION\tLABEL\tPREFIX\tBANNER")
	for _, dr := range s.Routes() {
		for _, route := range dr.Routes {
			v := route.Version
			banner := string(v.Banner)
			if banner == "" {
				banner = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", dr.Docs.Metadata().ID, v.Key, v.Label, route.Prefix, banner)
		}
	}
	return w.Flush()
}
