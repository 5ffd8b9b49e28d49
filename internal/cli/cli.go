// Package cli implements the pypiscope command-line interface.
//
// Commands cover the library's full surface: listing a user's packages,
// fetching one package's detail, aggregating every detail, rendering a
// dependency graph, browsing interactively, and serving the HTTP API.
// The CLI is built with cobra; logging uses charmbracelet/log with
// --verbose (-v) switching to debug level.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pypiscope/pkg/buildinfo"
	"github.com/matzehuels/pypiscope/pkg/pypi"
)

// appName is the application name used for config paths and display.
const appName = "pypiscope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config override, "" for the default location
	username   string // --user flag, overrides the config file
	strategy   string // --strategy flag (http|browser)
	timeout    time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "pypiscope inspects a PyPI user's published packages",
		Long:         `pypiscope retrieves the packages a PyPI user has published and enriches each with version history, dependencies, and download artifacts from the registry's JSON API.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/pypiscope/config.toml)")
	root.PersistentFlags().StringVarP(&c.username, "user", "u", "", "PyPI username (overrides config file)")
	root.PersistentFlags().StringVar(&c.strategy, "strategy", "", "listing strategy: http or browser")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "per-request timeout (default 10s)")

	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.detailCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// clientConfig merges the config file with flag overrides into a pypi.Config.
// The username argument wins over the --user flag, which wins over the file.
func (c *CLI) clientConfig(username string) (pypi.Config, error) {
	fileCfg, err := loadConfig(c.configPath)
	if err != nil {
		return pypi.Config{}, err
	}

	cfg := fileCfg.clientConfig()
	if c.username != "" {
		cfg.Username = c.username
	}
	if username != "" {
		cfg.Username = username
	}
	if c.strategy != "" {
		cfg.Strategy = pypi.Strategy(c.strategy)
	}
	if c.timeout > 0 {
		cfg.Timeout = c.timeout
	}
	return cfg, nil
}

// newClient builds a pypi client for the given username (which may be ""
// for commands that only fetch package details).
func (c *CLI) newClient(username string) (*pypi.Client, error) {
	cfg, err := c.clientConfig(username)
	if err != nil {
		return nil, err
	}
	return pypi.NewClient(cfg), nil
}
