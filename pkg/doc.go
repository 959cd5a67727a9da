// Package pkg provides the core libraries for algoviz.
//
// # Overview
//
// Algoviz runs four classic algorithms over small file inputs and renders
// the results as static diagrams. The pkg directory is organized by
// concern:
//
//  1. [graph] - edge-list model and input readers (CSV, text)
//  2. [mst], [dijkstra], [huffman] - the algorithm engines
//  3. [render] - DOT generation, Graphviz rendering, SVG charts
//  4. [pipeline] - orchestration (read → compute → render → write)
//  5. [cache], [io], [errors], [buildinfo] - supporting infrastructure
//
// # Architecture
//
// The typical data flow through algoviz:
//
//	CSV/JSON edge list or text file
//	         ↓
//	    [graph] / [io] package (read and validate input)
//	         ↓
//	    [mst] / [dijkstra] / [huffman] package (compute)
//	         ↓
//	    [render] package (DOT → SVG/PNG/PDF, frequency chart)
//	         ↓
//	    diagram artifacts on disk
//
// # Quick Start
//
// Compute a spanning tree and write its diagram:
//
//	import (
//	    "context"
//	    "github.com/Juan-Garzaro/algoviz/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	outcome, err := runner.RunPrim(context.Background(), pipeline.Options{
//	    GraphPath: "examples/graph.csv",
//	    OutputDir: "out",
//	    Formats:   []string{pipeline.FormatPNG},
//	})
//
// The engines are importable on their own; they take plain edge slices and
// return plain results with no rendering or file I/O attached.
package pkg
