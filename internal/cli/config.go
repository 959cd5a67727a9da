package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Juan-Garzaro/algoviz/pkg/pipeline"
)

// =============================================================================
// Config
// =============================================================================

// Config holds file-level defaults for the commands. Flags override every
// field; the file replaces nothing that a flag sets explicitly.
type Config struct {
	// GraphPath is the default CSV edge-list file.
	GraphPath string `toml:"graph_path"`

	// TextPath is the default text file for huffman.
	TextPath string `toml:"text_path"`

	// OutputDir is where diagram artifacts are written.
	OutputDir string `toml:"output_dir"`

	// Formats lists the default output formats (svg, png, pdf).
	Formats []string `toml:"formats"`

	// Source is the default Dijkstra source node.
	Source string `toml:"source"`

	// Root is the default Prim start node.
	Root string `toml:"root"`

	// Scale is the raster scale for chart conversion.
	Scale float64 `toml:"scale"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		GraphPath: "data/graph.csv",
		TextPath:  "data/text.txt",
		OutputDir: "out",
		Formats:   []string{pipeline.FormatPNG},
		Scale:     pipeline.DefaultScale,
	}
}

// LoadConfig reads the TOML config at path. An empty path falls back to the
// XDG location; a missing file at the fallback location is not an error, but
// a missing file named explicitly is.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			return DefaultConfig(), nil
		}
	}

	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/algoviz/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// parseFormats parses a comma-separated format string, falling back to the
// config defaults when the flag is empty.
func parseFormats(s string, def []string) []string {
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
