package mst

import (
	"sort"

	"github.com/Juan-Garzaro/algoviz/pkg/graph"
)

// Kruskal computes a minimum spanning tree by sorting all edges ascending by
// weight and greedily accepting every edge whose endpoints are still in
// different components. Cycle detection uses a fresh [UnionFind] per run.
// Disconnected input yields a minimum spanning forest with fewer than n-1
// edges, not an error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(edges []graph.Edge) (Tree, error) {
	if len(edges) == 0 {
		return Tree{}, errNoEdges()
	}

	nodes := graph.Nodes(edges)
	uf := NewUnionFind(nodes)

	// Stable sort keeps input order on ties, making the forest deterministic.
	sorted := make([]graph.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	tree := Tree{Edges: make([]graph.Edge, 0, len(nodes)-1)}
	for _, e := range sorted {
		if !uf.Union(e.From, e.To) {
			continue // same component already, edge would close a cycle
		}
		tree.Edges = append(tree.Edges, e)
		tree.TotalWeight += e.Weight
		if len(tree.Edges) == len(nodes)-1 {
			break
		}
	}

	return tree, nil
}
