package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite an existing site definition"`
	Output string `short:"o" name:"output" help:"Directory to write the example site into" type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	// With an output directory the definition keeps its file name and moves there.
	if i.Output != "" {
		path = filepath.Join(i.Output, filepath.Base(root.Config))
	}
	g.logger().Debug("Initializing site", logfields.ConfigPath(path), slog.Bool("force", i.Force))
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote example site definition to %s\n", path)
	return nil
}
