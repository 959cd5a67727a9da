package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Juan-Garzaro/algoviz/pkg/pipeline"
	"github.com/Juan-Garzaro/algoviz/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleUnreachable = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printStats prints input-size statistics on a single line.
func printStats(stats pipeline.Stats) {
	parts := []string{
		fmt.Sprintf("%d nodes", stats.NodeCount),
		fmt.Sprintf("%d edges", stats.EdgeCount),
		fmt.Sprintf("computed in %s", stats.ComputeTime.Round(10*time.Microsecond)),
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

// printArtifacts lists every written artifact.
func printArtifacts(run pipeline.Run) {
	for _, path := range run.Artifacts {
		printFile(path)
	}
}

// =============================================================================
// Result Tables
// =============================================================================

func newResultTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return StyleValue
		})
}

// printMSTResult prints the spanning tree edge list and total weight.
func printMSTResult(algo string, out pipeline.MSTOutcome) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s minimum spanning tree", algo)))

	t := newResultTable("From", "To", "Weight")
	for _, e := range out.Tree.Edges {
		t.Row(e.From, e.To, formatWeight(e.Weight))
	}
	fmt.Println(t.Render())

	printSuccess("total weight %s", formatWeight(out.Tree.TotalWeight))
	printStats(out.Stats)
	printArtifacts(out.Run)
}

// printPathsResult prints one line per target node: the path and its
// distance, or an unreachable marker.
func printPathsResult(out pipeline.PathsOutcome) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Shortest paths from %s", out.Paths.Source)))

	t := newResultTable("Target", "Path", "Distance")
	for _, node := range out.Nodes {
		if node == out.Paths.Source {
			continue
		}
		dist := out.Paths.Dist[node]
		if math.IsInf(dist, 1) {
			t.Row(node, styleUnreachable.Render("NO REACHABLE"), "∞")
			continue
		}
		t.Row(node, pathString(out.Paths.PathTo(node)), formatWeight(dist))
	}
	fmt.Println(t.Render())

	printStats(out.Stats)
	printArtifacts(out.Run)
}

// printHuffmanResult prints the code table sorted by descending frequency,
// ties keeping first-appearance order.
func printHuffmanResult(out pipeline.HuffmanOutcome) {
	fmt.Println(StyleTitle.Render("Huffman coding"))

	symbols := make([]rune, len(out.Coding.Order))
	copy(symbols, out.Coding.Order)
	sort.SliceStable(symbols, func(i, j int) bool {
		return out.Coding.Freqs[symbols[i]] > out.Coding.Freqs[symbols[j]]
	})

	t := newResultTable("Symbol", "Count", "Code")
	for _, ch := range symbols {
		t.Row(render.DisplaySymbol(ch), fmt.Sprintf("%d", out.Coding.Freqs[ch]), out.Coding.Codes[ch])
	}
	fmt.Println(t.Render())

	printSuccess("%d symbols, %d bits encoded", len(out.Coding.Codes), out.Coding.EncodedLen())
	printArtifacts(out.Run)
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// formatWeight renders a weight without trailing zeros.
func formatWeight(w float64) string {
	return fmt.Sprintf("%g", w)
}

// pathString joins a node sequence the way the console report shows it.
func pathString(path []string) string {
	return strings.Join(path, " "+iconArrow+" ")
}
