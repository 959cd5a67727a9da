package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
graph_path = "inputs/edges.csv"
formats = ["svg", "pdf"]
source = "A"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.GraphPath != "inputs/edges.csv" {
		t.Errorf("GraphPath = %q, want inputs/edges.csv", cfg.GraphPath)
	}
	if !reflect.DeepEqual(cfg.Formats, []string{"svg", "pdf"}) {
		t.Errorf("Formats = %v, want [svg pdf]", cfg.Formats)
	}
	if cfg.Source != "A" {
		t.Errorf("Source = %q, want A", cfg.Source)
	}
	// Unset keys keep their defaults.
	if cfg.TextPath != DefaultConfig().TextPath {
		t.Errorf("TextPath = %q, want default %q", cfg.TextPath, DefaultConfig().TextPath)
	}
	if cfg.OutputDir != DefaultConfig().OutputDir {
		t.Errorf("OutputDir = %q, want default %q", cfg.OutputDir, DefaultConfig().OutputDir)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("explicitly named missing config should error")
	}
}

func TestLoadConfigMissingFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`graph_file = "x.csv"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestParseFormats(t *testing.T) {
	def := []string{"png"}
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty falls back", in: "", want: []string{"png"}},
		{name: "single", in: "svg", want: []string{"svg"}},
		{name: "comma separated", in: "svg,pdf", want: []string{"svg", "pdf"}},
		{name: "spaces trimmed", in: "svg, pdf", want: []string{"svg", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.in, def); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	if got := fallback("flag", "config"); got != "flag" {
		t.Errorf("fallback(flag, config) = %q", got)
	}
	if got := fallback("", "config"); got != "config" {
		t.Errorf("fallback(empty, config) = %q", got)
	}
}
