package mst

// UnionFind is a disjoint-set structure over string node identifiers with
// path compression and union by rank. It backs Kruskal's cycle detection:
// one instance is created per run and discarded afterwards.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates a UnionFind where each supplied node is its own root
// with rank zero.
func NewUnionFind(nodes []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(nodes)),
		rank:   make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		uf.parent[n] = n
		uf.rank[n] = 0
	}
	return uf
}

// Find returns the root of the set containing x, repointing every node on the
// walked chain directly to that root. Amortized near-constant per call.
func (uf *UnionFind) Find(x string) string {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: point everything on the chain at the root.
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Union merges the sets containing a and b. It returns false when both are
// already in the same set (joining them would close a cycle), true when a
// merge happened. The lower-rank root is attached under the higher-rank one;
// on equal ranks b's root goes under a's root and a's root's rank grows.
func (uf *UnionFind) Union(a, b string) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}

	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
	return true
}
