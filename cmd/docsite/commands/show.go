package commands

import (
	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format; defaults to the format of --output, else yaml" enum:",yaml,json,toml" default:""`
	Output string `short:"o" help:"Write to this file instead of stdout" type:"path"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	loaded, err := loadSite(g, root)
	if err != nil {
		return err
	}

	format, err := s.format()
	if err != nil {
		return err
	}
	data, err := config.Marshal(loaded.Config, format)
	if err != nil {
		return err
	}
	if s.Output != "" {
		return config.WriteFile(s.Output, data)
	}
	_, err = g.out().Write(data)
	return err
}

func (s *ShowCmd) format() (config.Format, error) {
	switch {
	case s.Format != "":
		f, err := config.ParseFormat(s.Format)
		if err != nil {
			return "", ferrors.ValidationError(err.Error()).WithField("--format").Build()
		}
		return f, nil
	case s.Output != "":
		f, err := config.FormatFromPath(s.Output)
		if err != nil {
			return "", ferrors.ValidationError(err.Error()).WithField("--output").Build()
		}
		return f, nil
	default:
		return config.FormatYAML, nil
	}
}
