package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Juan-Garzaro/algoviz/pkg/cache"
	"github.com/Juan-Garzaro/algoviz/pkg/dijkstra"
	"github.com/Juan-Garzaro/algoviz/pkg/errors"
	"github.com/Juan-Garzaro/algoviz/pkg/graph"
	"github.com/Juan-Garzaro/algoviz/pkg/huffman"
	algio "github.com/Juan-Garzaro/algoviz/pkg/io"
	"github.com/Juan-Garzaro/algoviz/pkg/mst"
	"github.com/Juan-Garzaro/algoviz/pkg/render"
)

// renderCacheTTL bounds how long cached renders live. Renders are
// deterministic, so the TTL only caps disk growth.
const renderCacheTTL = 7 * 24 * time.Hour

// Runner executes algorithm pipelines. It is stateless apart from its
// logger and render cache; concurrent runs on independent inputs are safe.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a Runner. A nil cache disables caching; a nil logger
// discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{cache: c, logger: logger}
}

// MSTOutcome is the result of a Prim or Kruskal run.
type MSTOutcome struct {
	Run
	Tree  mst.Tree
	Nodes []string
}

// PathsOutcome is the result of a Dijkstra run.
type PathsOutcome struct {
	Run
	Paths dijkstra.Result
	Nodes []string
}

// HuffmanOutcome is the result of a Huffman run.
type HuffmanOutcome struct {
	Run
	Coding huffman.Result
}

// RunPrim reads the edge list, computes Prim's MST, and renders the full
// graph with the tree highlighted.
func (r *Runner) RunPrim(ctx context.Context, opts Options) (MSTOutcome, error) {
	return r.runMST(ctx, opts, ArtifactPrim, "prim", func(edges []graph.Edge) (mst.Tree, error) {
		return mst.Prim(edges, mst.WithRoot(opts.Root))
	})
}

// RunKruskal reads the edge list, computes Kruskal's MST, and renders the
// full graph with the forest highlighted.
func (r *Runner) RunKruskal(ctx context.Context, opts Options) (MSTOutcome, error) {
	return r.runMST(ctx, opts, ArtifactKruskal, "kruskal", mst.Kruskal)
}

func (r *Runner) runMST(ctx context.Context, opts Options, artifact, algo string, compute func([]graph.Edge) (mst.Tree, error)) (MSTOutcome, error) {
	opts.setDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return MSTOutcome{}, err
	}

	run, logger := r.newRun(algo)
	out := MSTOutcome{Run: run}

	edges, err := r.readEdges(logger, opts, &out.Stats)
	if err != nil {
		return MSTOutcome{}, err
	}
	out.Nodes = graph.Nodes(edges)
	out.Stats.NodeCount = len(out.Nodes)
	out.Stats.EdgeCount = len(edges)

	start := time.Now()
	tree, err := compute(edges)
	if err != nil {
		return MSTOutcome{}, err
	}
	out.Tree = tree
	out.Stats.ComputeTime = time.Since(start)
	logger.Debug("computed spanning tree", "edges", len(tree.Edges), "weight", tree.TotalWeight)

	title := fmt.Sprintf("MST %s (total weight %g)", algo, tree.TotalWeight)
	dot := render.GraphDOT(edges, tree.Edges, title)
	if err := r.writeDiagram(ctx, logger, &out.Run, opts, artifact, dot); err != nil {
		return MSTOutcome{}, err
	}

	return out, nil
}

// RunDijkstra reads the edge list, computes shortest paths from
// opts.Source, and renders the graph with every shortest-path edge
// highlighted.
func (r *Runner) RunDijkstra(ctx context.Context, opts Options) (PathsOutcome, error) {
	opts.setDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return PathsOutcome{}, err
	}

	run, logger := r.newRun("dijkstra")
	out := PathsOutcome{Run: run}

	edges, err := r.readEdges(logger, opts, &out.Stats)
	if err != nil {
		return PathsOutcome{}, err
	}
	out.Nodes = graph.Nodes(edges)
	out.Stats.NodeCount = len(out.Nodes)
	out.Stats.EdgeCount = len(edges)

	if opts.Source == "" && len(out.Nodes) > 0 {
		opts.Source = out.Nodes[0]
		logger.Debug("no source given, using smallest node", "source", opts.Source)
	}

	start := time.Now()
	res, err := dijkstra.Run(edges, opts.Source)
	if err != nil {
		return PathsOutcome{}, err
	}
	out.Paths = res
	out.Stats.ComputeTime = time.Since(start)

	highlight := shortestPathEdges(res, out.Nodes)
	logger.Debug("computed shortest paths", "source", opts.Source, "highlighted", len(highlight))

	title := fmt.Sprintf("Shortest paths from %s", opts.Source)
	dot := render.GraphDOT(edges, highlight, title)
	if err := r.writeDiagram(ctx, logger, &out.Run, opts, ArtifactDijkstra, dot); err != nil {
		return PathsOutcome{}, err
	}

	return out, nil
}

// RunHuffman reads the text, builds the Huffman coding, and renders both the
// tree diagram and the frequency chart.
func (r *Runner) RunHuffman(ctx context.Context, opts Options) (HuffmanOutcome, error) {
	opts.setDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return HuffmanOutcome{}, err
	}

	run, logger := r.newRun("huffman")
	out := HuffmanOutcome{Run: run}

	start := time.Now()
	text, err := graph.ReadTextFile(opts.TextPath)
	if err != nil {
		return HuffmanOutcome{}, err
	}
	out.Stats.ReadTime = time.Since(start)

	start = time.Now()
	coding, err := huffman.Build(text)
	if err != nil {
		return HuffmanOutcome{}, err
	}
	out.Coding = coding
	out.Stats.ComputeTime = time.Since(start)
	logger.Debug("built huffman coding", "symbols", len(coding.Codes), "bits", coding.EncodedLen())

	dot := render.HuffmanTreeDOT(coding.Root)
	if err := r.writeDiagram(ctx, logger, &out.Run, opts, ArtifactHuffmanTree, dot); err != nil {
		return HuffmanOutcome{}, err
	}

	svg := render.FrequencyChartSVG(coding.Freqs, coding.Order)
	if err := r.writeChart(ctx, logger, &out.Run, opts, ArtifactHuffmanFreq, svg); err != nil {
		return HuffmanOutcome{}, err
	}

	return out, nil
}

// newRun allocates a run ID and derives a logger carrying it.
func (r *Runner) newRun(algo string) (Run, *log.Logger) {
	id := uuid.NewString()
	logger := r.logger.With("run", id[:8], "algo", algo)
	return Run{ID: id}, logger
}

// readEdges loads the edge list, dispatching on file extension: .json uses
// the strict JSON codec, everything else the tolerant CSV reader. CSV
// records skipped for malformed fields are logged as warnings.
func (r *Runner) readEdges(logger *log.Logger, opts Options, stats *Stats) ([]graph.Edge, error) {
	start := time.Now()
	defer func() { stats.ReadTime = time.Since(start) }()

	if filepath.Ext(opts.GraphPath) == ".json" {
		return algio.ReadJSONFile(opts.GraphPath)
	}

	edges, skipped, err := graph.ReadEdgesFile(opts.GraphPath)
	if err != nil {
		return nil, err
	}
	for _, rec := range skipped {
		logger.Warn("skipped malformed record", "file", opts.GraphPath, "detail", rec.Error())
	}
	return edges, nil
}

// shortestPathEdges collects the union of all shortest-path edges,
// deduplicated on unordered endpoint pairs. Node order is stable, so the
// highlight set is deterministic.
func shortestPathEdges(res dijkstra.Result, nodes []string) []graph.Edge {
	seen := make(map[string]bool)
	var out []graph.Edge
	for _, target := range nodes {
		path := res.PathTo(target)
		for i := 0; i+1 < len(path); i++ {
			e := graph.Edge{From: path[i], To: path[i+1]}
			if seen[e.Key()] {
				continue
			}
			seen[e.Key()] = true
			out = append(out, e)
		}
	}
	return out
}

// writeDiagram renders a DOT diagram in every requested format and appends
// the written paths to run.Artifacts.
func (r *Runner) writeDiagram(ctx context.Context, logger *log.Logger, run *Run, opts Options, base, dot string) error {
	start := time.Now()
	defer func() { run.Stats.RenderTime += time.Since(start) }()

	for _, format := range opts.Formats {
		key := cache.Key("diagram", format, dot)
		data, hit, err := r.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("render cache read failed", "err", err)
		}
		if !hit {
			switch format {
			case FormatSVG:
				data, err = render.SVG(ctx, dot)
			case FormatPNG:
				data, err = render.PNG(ctx, dot)
			case FormatPDF:
				var svg []byte
				if svg, err = render.SVG(ctx, dot); err == nil {
					data, err = render.ToPDF(svg)
				}
			}
			if err != nil {
				return err
			}
			if err := r.cache.Set(ctx, key, data, renderCacheTTL); err != nil {
				logger.Warn("render cache write failed", "err", err)
			}
		} else {
			logger.Debug("render cache hit", "format", format)
		}
		if err := r.writeArtifact(logger, run, opts, base, format, data); err != nil {
			return err
		}
	}
	return nil
}

// writeChart writes the hand-built SVG chart, converting via rsvg-convert
// for raster formats. Conversions go through the render cache; the SVG
// itself is already in memory and is written directly.
func (r *Runner) writeChart(ctx context.Context, logger *log.Logger, run *Run, opts Options, base string, svg []byte) error {
	start := time.Now()
	defer func() { run.Stats.RenderTime += time.Since(start) }()

	for _, format := range opts.Formats {
		if format == FormatSVG {
			if err := r.writeArtifact(logger, run, opts, base, format, svg); err != nil {
				return err
			}
			continue
		}

		key := cache.Key("chart", format, strconv.FormatFloat(opts.Scale, 'g', -1, 64), string(svg))
		data, hit, err := r.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("render cache read failed", "err", err)
		}
		if !hit {
			switch format {
			case FormatPNG:
				data, err = render.ToPNG(svg, opts.Scale)
			case FormatPDF:
				data, err = render.ToPDF(svg)
			}
			if err != nil {
				return err
			}
			if err := r.cache.Set(ctx, key, data, renderCacheTTL); err != nil {
				logger.Warn("render cache write failed", "err", err)
			}
		} else {
			logger.Debug("render cache hit", "format", format)
		}
		if err := r.writeArtifact(logger, run, opts, base, format, data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) writeArtifact(logger *log.Logger, run *Run, opts Options, base, format string, data []byte) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create output dir %s", opts.OutputDir)
	}
	path := filepath.Join(opts.OutputDir, base+"."+format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	run.Artifacts = append(run.Artifacts, path)
	logger.Info("wrote artifact", "path", path, "bytes", len(data))
	return nil
}
