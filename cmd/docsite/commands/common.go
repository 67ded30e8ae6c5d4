package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// LogLevelEnv overrides the log level chosen by --verbose.
const LogLevelEnv = "DOCSITE_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// NewGlobal returns the context commands print to stdout with.
func NewGlobal(logger *slog.Logger) *Global {
	return &Global{Logger: logger, Out: os.Stdout}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site definition path (yaml, json or toml)" default:"${default_config}" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Load the site definition and report the first error"`
	Show     ShowCmd     `cmd:"" help:"Print the normalized site definition"`
	Init     InitCmd     `cmd:"" help:"Write an example site definition"`
	Routes   RoutesCmd   `cmd:"" help:"List docs instances and the URL prefix of every version"`
	Links    LinksCmd    `cmd:"" help:"Check relative markdown links in the docs directories"`
	Watch    WatchCmd    `cmd:"" help:"Reload the site definition whenever it changes"`
	Plugins  PluginsCmd  `cmd:"" help:"List the registered presets, themes and plugins"`
}

// DefaultVars supplies the interpolated flag defaults.
var DefaultVars = kong.Vars{"default_config": config.DefaultPath}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevel()})))
	return nil
}

func (c *CLI) logLevel() slog.Level {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(raw)); err == nil {
			level = l
		}
	}
	return level
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// loadSite loads the definition named by --config.
func loadSite(g *Global, root *CLI, opts ...site.Option) (*site.Site, error) {
	return site.Load(root.Config, append([]site.Option{site.WithLogger(g.logger())}, opts...)...)
}
