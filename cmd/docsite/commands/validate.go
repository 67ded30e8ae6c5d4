package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	MetricsFile string `name:"metrics-file" help:"Write load metrics to this node-exporter textfile" type:"path"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	var opts []site.Option
	var rec *metrics.PrometheusRecorder
	if v.MetricsFile != "" {
		rec = metrics.NewPrometheusRecorder(nil)
		opts = append(opts, site.WithRecorder(rec))
	}

	s, err := loadSite(g, root, opts...)
	if rec != nil {
		if werr := rec.WriteTextfile(v.MetricsFile); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(g.out(), "%s is valid\n", root.Config)
	_, _ = fmt.Fprint(g.out(), s.Summary())
	return nil
}
