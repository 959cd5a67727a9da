package graph

import (
	"sort"
)

// Edge is an undirected, weighted connection between two nodes.
// An edge (U, V, W) is traversable in both directions.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Neighbor is one entry of an adjacency view: the far endpoint of an edge
// together with its weight.
type Neighbor struct {
	To     string
	Weight float64
}

// Nodes returns the distinct node identifiers appearing in edges, sorted
// lexicographically. Sorting gives callers a stable iteration order, which
// keeps "arbitrary node" choices deterministic.
func Nodes(edges []Edge) []string {
	seen := make(map[string]struct{}, len(edges)*2)
	for _, e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Adjacency builds a neighbor map from an edge list. Every edge contributes an
// entry to both endpoints' lists (undirected). Parallel edges and self-loops
// are preserved as supplied.
//
// The returned map is owned by the caller; engines build one per invocation
// and discard it when done.
func Adjacency(edges []Edge) map[string][]Neighbor {
	adj := make(map[string][]Neighbor, len(edges)*2)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], Neighbor{To: e.To, Weight: e.Weight})
		adj[e.To] = append(adj[e.To], Neighbor{To: e.From, Weight: e.Weight})
	}
	return adj
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// Key returns an order-independent identifier for an edge's endpoint pair.
// (A,B) and (B,A) map to the same key; weights are ignored. Used by renderers
// to match result edges against the full edge list.
func (e Edge) Key() string {
	if e.To < e.From {
		return e.To + "\x00" + e.From
	}
	return e.From + "\x00" + e.To
}
