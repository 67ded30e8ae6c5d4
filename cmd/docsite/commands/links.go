package commands

import (
	"fmt"

	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/linkcheck"
)

// LinksCmd implements the 'links' command.
type LinksCmd struct {
	Policy string `help:"Override onBrokenMarkdownLinks for this run" enum:",ignore,log,warn,throw" default:""`
}

func (l *LinksCmd) Run(g *Global, root *CLI) error {
	s, err := loadSite(g, root)
	if err != nil {
		return err
	}

	checker := linkcheck.NewChecker(afero.NewOsFs(), g.logger())
	report, err := checker.Check(linkcheck.ContentDirs(s)...)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Checked %d links in %d files, %d broken\n", report.Links, report.Files, len(report.Broken))

	policy := s.Config.OnBrokenMarkdownLinks
	if l.Policy != "" {
		policy = config.NormalizeReportingSeverity(l.Policy)
	}
	return checker.Apply(report, policy)
}
