// Package mst computes minimum spanning trees over undirected weighted
// edge lists using either Prim's or Kruskal's algorithm.
//
// Both engines consume a [graph.Edge] slice and return a [Tree]: the accepted
// edges in the order they were added plus their total weight. For a connected
// input with n distinct nodes the result holds exactly n-1 edges. Disconnected
// input is not an error: Prim covers only the component containing its root,
// Kruskal returns a spanning forest with n-k edges for k components. Callers
// that need to detect disconnection compare len(Tree.Edges) against the node
// count themselves.
//
// # Determinism
//
// Equal-weight choices are implementation-defined but fixed: Prim's frontier
// heap breaks weight ties by insertion sequence, Kruskal sorts with a stable
// sort so ties keep input order. Identical input order always yields an
// identical tree.
package mst
