package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
	"github.com/Juan-Garzaro/algoviz/pkg/graph"
	"github.com/Juan-Garzaro/algoviz/pkg/mst"
)

// triangle is the canonical three-node graph: the MST is {A-B, B-C}, weight 3.
func triangle() []graph.Edge {
	return []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 4},
	}
}

// twoComponents has components {A,B,C} and {X,Y}.
func twoComponents() []graph.Edge {
	return []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "X", To: "Y", Weight: 5},
	}
}

// randomConnected builds a connected graph with n nodes: a weighted chain
// plus extra random edges, seeded for reproducibility.
func randomConnected(n, extra int) []graph.Edge {
	r := rand.New(rand.NewSource(42))
	var edges []graph.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{
			From:   fmt.Sprintf("V%02d", i-1),
			To:     fmt.Sprintf("V%02d", i),
			Weight: 1 + float64(r.Intn(10)),
		})
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, graph.Edge{
			From:   fmt.Sprintf("V%02d", u),
			To:     fmt.Sprintf("V%02d", v),
			Weight: 1 + float64(r.Intn(100)),
		})
	}
	return edges
}

// assertAcyclic reruns union-find over the result edges and fails if any
// union reports an already-connected pair.
func assertAcyclic(t *testing.T, tree mst.Tree) {
	t.Helper()
	uf := mst.NewUnionFind(graph.Nodes(tree.Edges))
	for _, e := range tree.Edges {
		require.True(t, uf.Union(e.From, e.To), "edge %s-%s closes a cycle", e.From, e.To)
	}
}

func TestPrimTriangle(t *testing.T) {
	tree, err := mst.Prim(triangle(), mst.WithRoot("A"))
	require.NoError(t, err)

	assert.Len(t, tree.Edges, 2)
	assert.Equal(t, 3.0, tree.TotalWeight)

	got := map[string]bool{}
	for _, e := range tree.Edges {
		got[e.Key()] = true
	}
	assert.True(t, got[graph.Edge{From: "A", To: "B"}.Key()], "missing edge A-B")
	assert.True(t, got[graph.Edge{From: "B", To: "C"}.Key()], "missing edge B-C")
}

func TestKruskalTriangle(t *testing.T) {
	tree, err := mst.Kruskal(triangle())
	require.NoError(t, err)

	assert.Len(t, tree.Edges, 2)
	assert.Equal(t, 3.0, tree.TotalWeight)
	assertAcyclic(t, tree)
}

func TestPrimKruskalAgreeOnWeight(t *testing.T) {
	edges := randomConnected(30, 60)
	n := len(graph.Nodes(edges))

	prim, err := mst.Prim(edges)
	require.NoError(t, err)
	kruskal, err := mst.Kruskal(edges)
	require.NoError(t, err)

	assert.Len(t, prim.Edges, n-1, "Prim edge count")
	assert.Len(t, kruskal.Edges, n-1, "Kruskal edge count")
	// MST total weight is unique even when the edge sets differ.
	assert.Equal(t, kruskal.TotalWeight, prim.TotalWeight)
	assertAcyclic(t, prim)
	assertAcyclic(t, kruskal)
}

func TestPrimDisconnectedCoversRootComponent(t *testing.T) {
	tree, err := mst.Prim(twoComponents(), mst.WithRoot("A"))
	require.NoError(t, err)

	// Only edges inside A's component.
	assert.Len(t, tree.Edges, 2)
	for _, e := range tree.Edges {
		assert.NotContains(t, []string{"X", "Y"}, e.From)
		assert.NotContains(t, []string{"X", "Y"}, e.To)
	}
}

func TestKruskalDisconnectedYieldsForest(t *testing.T) {
	tree, err := mst.Kruskal(twoComponents())
	require.NoError(t, err)

	// n=5 nodes, k=2 components: forest has n-k=3 edges.
	assert.Len(t, tree.Edges, 3)
	assert.Equal(t, 8.0, tree.TotalWeight)
	assertAcyclic(t, tree)
}

func TestPrimDefaultRootIsDeterministic(t *testing.T) {
	edges := triangle()

	first, err := mst.Prim(edges)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := mst.Prim(edges)
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
	}

	// Unknown root falls back to the same deterministic choice.
	fallback, err := mst.Prim(edges, mst.WithRoot("nope"))
	require.NoError(t, err)
	assert.Equal(t, first.Edges, fallback.Edges)
}

func TestPrimEqualWeightsDeterministic(t *testing.T) {
	edges := []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}
	first, err := mst.Prim(edges, mst.WithRoot("A"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := mst.Prim(edges, mst.WithRoot("A"))
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
	}
}

func TestSelfLoopsAndParallelEdgesTolerated(t *testing.T) {
	edges := append(triangle(),
		graph.Edge{From: "A", To: "A", Weight: 0.5},
		graph.Edge{From: "A", To: "B", Weight: 9},
	)

	prim, err := mst.Prim(edges, mst.WithRoot("A"))
	require.NoError(t, err)
	kruskal, err := mst.Kruskal(edges)
	require.NoError(t, err)

	assert.Equal(t, 3.0, prim.TotalWeight)
	assert.Equal(t, 3.0, kruskal.TotalWeight)
}

func TestEmptyInput(t *testing.T) {
	_, err := mst.Prim(nil)
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput), "Prim: got %v", err)

	_, err = mst.Kruskal(nil)
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput), "Kruskal: got %v", err)
}
