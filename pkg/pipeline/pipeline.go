// Package pipeline joins the stages of one algorithm run: read input,
// execute the engine, render diagrams, write artifacts.
//
// The engines themselves are pure; this package owns every side effect
// around them (file reads, output directory creation, artifact writes) so
// CLI and tests share one code path. Each run is tagged with a UUID that
// appears in log lines and in the returned outcome.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    GraphPath: "data/graph.csv",
//	    OutputDir: "out",
//	    Formats:   []string{pipeline.FormatPNG},
//	}
//	outcome, err := runner.RunPrim(ctx, opts)
package pipeline

import (
	"time"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// Artifact base names, fixed so downstream tooling can rely on them.
const (
	ArtifactPrim        = "prim_mst"
	ArtifactKruskal     = "kruskal_mst"
	ArtifactDijkstra    = "dijkstra_paths"
	ArtifactHuffmanTree = "huffman_tree"
	ArtifactHuffmanFreq = "huffman_freq"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// DefaultScale is the raster scale factor for PNG conversion of SVG charts.
const DefaultScale = 2.0

// Options configures a pipeline run. Zero values fall back to defaults via
// setDefaults; Formats entries must pass [ValidateFormats].
type Options struct {
	// GraphPath is the CSV edge-list file (Prim, Kruskal, Dijkstra).
	GraphPath string

	// TextPath is the raw text file (Huffman).
	TextPath string

	// Root is the optional start node for Prim.
	Root string

	// Source is the source node for Dijkstra. Empty picks the
	// lexicographically smallest node.
	Source string

	// OutputDir receives the diagram artifacts; created on demand.
	OutputDir string

	// Formats lists the artifact formats to write. Defaults to PNG.
	Formats []string

	// Scale is the raster scale for SVG to PNG chart conversion.
	Scale float64
}

func (o *Options) setDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
}

// ValidateFormats checks that every requested format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", f)
		}
	}
	return nil
}

// Stats contains timing and size information for one run.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	ReadTime    time.Duration
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// Run is the metadata shared by all outcomes.
type Run struct {
	// ID is the UUID assigned to this execution.
	ID string

	// Artifacts lists the files written, in write order.
	Artifacts []string

	// Stats holds timing and input-size numbers.
	Stats Stats
}
