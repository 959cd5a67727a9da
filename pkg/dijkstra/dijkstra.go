package dijkstra

import (
	"container/heap"
	"math"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
	"github.com/Juan-Garzaro/algoviz/pkg/graph"
)

// Result holds the output of one shortest-path run.
type Result struct {
	// Source is the node the distances are measured from.
	Source string

	// Dist maps every node in the graph to its minimal cumulative distance
	// from Source. Unreachable nodes map to math.Inf(1).
	Dist map[string]float64

	// Prev maps a node to its immediate predecessor on the shortest path.
	// The source and unreachable nodes have no entry.
	Prev map[string]string
}

// Run computes shortest distances from source to every node in edges.
// It fails with an UNKNOWN_SOURCE error before doing any work when source is
// not among the graph's nodes, and with EMPTY_INPUT when edges is empty.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Run(edges []graph.Edge, source string) (Result, error) {
	if len(edges) == 0 {
		return Result{}, errors.New(errors.ErrCodeEmptyInput, "edge list is empty")
	}

	adj := graph.Adjacency(edges)
	if _, ok := adj[source]; !ok {
		return Result{}, errors.New(errors.ErrCodeUnknownSource, "source node %q not in graph", source)
	}

	res := Result{
		Source: source,
		Dist:   make(map[string]float64, len(adj)),
		Prev:   make(map[string]string, len(adj)),
	}
	for n := range adj {
		res.Dist[n] = math.Inf(1)
	}
	res.Dist[source] = 0

	pq := &distHeap{}
	heap.Init(pq)
	heap.Push(pq, distItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)

		// Lazy deletion: duplicate entries are allowed per node, so a pop
		// whose distance is worse than the recorded best is stale.
		if item.dist > res.Dist[item.node] {
			continue
		}

		for _, n := range adj[item.node] {
			candidate := item.dist + n.Weight
			if candidate < res.Dist[n.To] {
				res.Dist[n.To] = candidate
				res.Prev[n.To] = item.node
				heap.Push(pq, distItem{node: n.To, dist: candidate})
			}
		}
	}

	return res, nil
}

// PathTo reconstructs the shortest path from the result's source to target by
// walking predecessors backward. It returns nil when target is unreachable,
// unknown, or the walk does not terminate at the source.
func (r Result) PathTo(target string) []string {
	if target == r.Source {
		return []string{target}
	}
	if _, ok := r.Prev[target]; !ok {
		return nil
	}

	var path []string
	at := target
	for at != r.Source {
		if len(path) > len(r.Dist) {
			return nil // malformed predecessor chain
		}
		path = append(path, at)
		prev, ok := r.Prev[at]
		if !ok {
			return nil // walk never reached the source
		}
		at = prev
	}
	path = append(path, r.Source)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable reports whether node has a finite recorded distance.
func (r Result) Reachable(node string) bool {
	d, ok := r.Dist[node]
	return ok && !math.IsInf(d, 1)
}

// distItem pairs a node with a tentative distance for heap ordering.
type distItem struct {
	node string
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) { *h = append(*h, x.(distItem)) }

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
