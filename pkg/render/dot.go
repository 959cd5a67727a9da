package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Juan-Garzaro/algoviz/pkg/graph"
	"github.com/Juan-Garzaro/algoviz/pkg/huffman"
)

// GraphDOT converts an undirected weighted edge list to Graphviz DOT.
// Edges whose endpoint pair appears in highlight (order-independent match)
// are drawn red and thick; the rest stay grey. Weight labels are shown only
// on highlighted edges when a highlight set is given, on all edges otherwise.
// The resulting string renders with [SVG] or [PNG].
func GraphDOT(edges []graph.Edge, highlight []graph.Edge, title string) string {
	marked := make(map[string]bool, len(highlight))
	for _, e := range highlight {
		marked[e.Key()] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=skyblue, fontsize=14];\n")
	if title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=18;\n", title)
	}
	buf.WriteString("\n")

	for _, n := range graph.Nodes(edges) {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := fmtEdgeAttrs(e, marked)
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtEdgeAttrs(e graph.Edge, marked map[string]bool) string {
	label := strconv.FormatFloat(e.Weight, 'g', -1, 64)
	if marked[e.Key()] {
		return fmt.Sprintf("label=%q, color=red, penwidth=2.5, fontcolor=darkgreen", label)
	}
	if len(marked) > 0 {
		// Highlight mode: unmarked edges stay unlabeled so the result
		// subset stands out.
		return "color=gray, penwidth=1.0"
	}
	return fmt.Sprintf("label=%q, color=gray, penwidth=1.0", label)
}

// HuffmanTreeDOT converts a Huffman tree to Graphviz DOT: a top-down digraph
// with '0' on left branches and '1' on right branches. Leaves are filled
// skyblue and show their symbol and frequency; internal nodes are light
// green and show only the combined frequency.
func HuffmanTreeDOT(root *huffman.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph H {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("  edge [fontcolor=red, fontsize=14];\n")
	buf.WriteString("\n")

	if root != nil {
		var next int
		writeHuffmanNode(&buf, root, &next)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeHuffmanNode emits node and to-child edge statements depth-first,
// handing out sequential IDs. Returns the ID assigned to n.
func writeHuffmanNode(buf *bytes.Buffer, n *huffman.Node, next *int) int {
	id := *next
	*next++

	if n.Leaf {
		fmt.Fprintf(buf, "  n%d [label=\"%s\\n(%d)\", fillcolor=skyblue];\n",
			id, escapeDOT(DisplaySymbol(n.Symbol)), n.Freq)
		return id
	}

	fmt.Fprintf(buf, "  n%d [label=\"%d\", fillcolor=lightgreen];\n", id, n.Freq)
	if n.Left != nil {
		left := writeHuffmanNode(buf, n.Left, next)
		fmt.Fprintf(buf, "  n%d -> n%d [label=\"0\"];\n", id, left)
	}
	if n.Right != nil {
		right := writeHuffmanNode(buf, n.Right, next)
		fmt.Fprintf(buf, "  n%d -> n%d [label=\"1\"];\n", id, right)
	}
	return id
}

// DisplaySymbol returns a printable stand-in for whitespace symbols so they
// remain visible in diagrams and tables.
func DisplaySymbol(r rune) string {
	switch r {
	case '\n':
		return "NL"
	case '\t':
		return "TAB"
	case ' ':
		return "SP"
	case '\r':
		return "CR"
	default:
		return string(r)
	}
}

func escapeDOT(s string) string {
	var out []rune
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
