// Package cli implements the algoviz command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Juan-Garzaro/algoviz/pkg/buildinfo"
	"github.com/Juan-Garzaro/algoviz/pkg/cache"
	"github.com/Juan-Garzaro/algoviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "algoviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Algoviz renders classic graph and coding algorithms as diagrams",
		Long:         `Algoviz runs Prim, Kruskal, Dijkstra, and Huffman over small file inputs and writes static diagrams of the results (spanning trees, shortest paths, coding trees, frequency charts).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/algoviz/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the render cache")

	// Register all subcommands
	root.AddCommand(c.primCommand())
	root.AddCommand(c.kruskalCommand())
	root.AddCommand(c.dijkstraCommand())
	root.AddCommand(c.huffmanCommand())
	root.AddCommand(c.menuCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. A cache failure falls
// back to no caching rather than failing the run.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(), c.Logger)
}

func (c *CLI) newCache() cache.Cache {
	if c.noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("render cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/algoviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// graphOptions builds pipeline options for the graph commands, with config
// values filling any flag left empty.
func (c *CLI) graphOptions(graphPath, output, formatsStr string) pipeline.Options {
	return pipeline.Options{
		GraphPath: fallback(graphPath, c.Config.GraphPath),
		OutputDir: fallback(output, c.Config.OutputDir),
		Formats:   parseFormats(formatsStr, c.Config.Formats),
		Scale:     c.Config.Scale,
	}
}

// textOptions builds pipeline options for the huffman command.
func (c *CLI) textOptions(textPath, output, formatsStr string) pipeline.Options {
	return pipeline.Options{
		TextPath:  fallback(textPath, c.Config.TextPath),
		OutputDir: fallback(output, c.Config.OutputDir),
		Formats:   parseFormats(formatsStr, c.Config.Formats),
		Scale:     c.Config.Scale,
	}
}

// fallback returns v, or def when v is empty.
func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
