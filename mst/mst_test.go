package mst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafolab/grafo/core"
	"github.com/grafolab/grafo/mst"
)

// buildTriangle returns A-B(1), B-C(2), A-C(3); its MST is {A-B, B-C},
// total weight 3.
func buildTriangle() *core.Graph[string] {
	g := core.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 3)

	return g
}

func TestKruskal_Triangle(t *testing.T) {
	forest, total, err := mst.Kruskal(buildTriangle())
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, 3.0, total)
	for _, e := range forest {
		assert.NotEqual(t, 3.0, e.Weight, "heaviest edge must be excluded")
	}
}

func TestKruskal_Validation(t *testing.T) {
	if _, _, err := mst.Kruskal[string](nil); !errors.Is(err, mst.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	d := core.New[string](core.WithDirected(true))
	if _, _, err := mst.Kruskal(d); !errors.Is(err, mst.ErrDirectedGraph) {
		t.Errorf("directed graph: want ErrDirectedGraph, got %v", err)
	}
}

func TestKruskal_TrivialGraphs(t *testing.T) {
	g := core.New[string]()
	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Equal(t, 0.0, total)

	g.AddVertex("A")
	forest, total, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Equal(t, 0.0, total)
}

func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	g := buildTriangle()
	// second component: X-Y(1), Y-Z(5), X-Z(2)
	require.NoError(t, g.AddEdge("X", "Y", 1))
	require.NoError(t, g.AddEdge("Y", "Z", 5))
	require.NoError(t, g.AddEdge("X", "Z", 2))

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	// one tree per component: (3-1) + (3-1) edges
	assert.Len(t, forest, 4)
	assert.Equal(t, 3.0+3.0, total)
}

func TestKruskal_SpanningTreeIsAcyclic(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("B", "D", 5)
	g.AddEdge("C", "D", 8)
	g.AddEdge("D", "E", 3)
	g.AddEdge("C", "E", 10)

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, forest, g.VertexCount()-1)
	// 1 (A-C) + 2 (B-C) + 5 (B-D) + 3 (D-E): C-D(8) loses to B-D(5) via B-C
	assert.Equal(t, 11.0, total)
}

func TestPrim_MatchesKruskalWeight(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("B", "D", 5)
	g.AddEdge("C", "D", 8)
	g.AddEdge("D", "E", 3)

	_, kw, err := mst.Kruskal(g)
	require.NoError(t, err)

	for _, root := range g.Vertices() {
		tree, pw, err := mst.Prim(g, root)
		require.NoError(t, err)
		assert.Len(t, tree, g.VertexCount()-1)
		assert.Equal(t, kw, pw, "Prim from %s", root)
	}
}

func TestPrim_SpansRootComponentOnly(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.AddEdge("X", "Y", 1))

	tree, total, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)
}

func TestPrim_Validation(t *testing.T) {
	if _, _, err := mst.Prim[string](nil, "A"); !errors.Is(err, mst.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	if _, _, err := mst.Prim(buildTriangle(), "missing"); !errors.Is(err, mst.ErrVertexNotFound) {
		t.Errorf("missing root: want ErrVertexNotFound, got %v", err)
	}
	d := core.New[string](core.WithDirected(true))
	if _, _, err := mst.Prim(d, "A"); !errors.Is(err, mst.ErrDirectedGraph) {
		t.Errorf("directed graph: want ErrDirectedGraph, got %v", err)
	}
}
