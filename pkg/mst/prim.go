package mst

import (
	"container/heap"

	"github.com/Juan-Garzaro/algoviz/pkg/graph"
)

// Prim grows a minimum spanning tree from a single root using a min-heap of
// frontier edges. The root defaults to the lexicographically smallest node;
// override it with [WithRoot]. Nodes unreachable from the root are silently
// excluded, so disconnected input yields a partial tree, not an error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []graph.Edge, opts ...Option) (Tree, error) {
	if len(edges) == 0 {
		return Tree{}, errNoEdges()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	adj := graph.Adjacency(edges)
	nodes := graph.Nodes(edges)

	start := o.root
	if _, ok := adj[start]; start == "" || !ok {
		start = nodes[0] // sorted order makes "arbitrary" deterministic
	}

	visited := make(map[string]bool, len(nodes))
	visited[start] = true

	pq := &frontierHeap{}
	heap.Init(pq)
	for _, n := range adj[start] {
		pq.push(frontierEdge{from: start, to: n.To, weight: n.Weight})
	}

	tree := Tree{Edges: make([]graph.Edge, 0, len(nodes)-1)}
	for pq.Len() > 0 && len(visited) < len(nodes) {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.to] {
			continue // stale frontier entry
		}

		visited[fe.to] = true
		tree.Edges = append(tree.Edges, graph.Edge{From: fe.from, To: fe.to, Weight: fe.weight})
		tree.TotalWeight += fe.weight

		for _, n := range adj[fe.to] {
			if !visited[n.To] {
				pq.push(frontierEdge{from: fe.to, to: n.To, weight: n.Weight})
			}
		}
	}

	return tree, nil
}

// frontierEdge is a candidate edge from the growing tree to an outside node.
// seq is an insertion counter used as the heap's secondary key so equal-weight
// pops are deterministic for a fixed input order.
type frontierEdge struct {
	from   string
	to     string
	weight float64
	seq    int
}

type frontierHeap struct {
	items []frontierEdge
	next  int
}

func (h *frontierHeap) push(fe frontierEdge) {
	fe.seq = h.next
	h.next++
	heap.Push(h, fe)
}

func (h frontierHeap) Len() int { return len(h.items) }

func (h frontierHeap) Less(i, j int) bool {
	if h.items[i].weight != h.items[j].weight {
		return h.items[i].weight < h.items[j].weight
	}
	return h.items[i].seq < h.items[j].seq
}

func (h frontierHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *frontierHeap) Push(x any) { h.items = append(h.items, x.(frontierEdge)) }

func (h *frontierHeap) Pop() any {
	old := h.items
	n := len(old)
	fe := old[n-1]
	h.items = old[:n-1]
	return fe
}
