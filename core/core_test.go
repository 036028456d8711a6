package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafolab/grafo/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("A")
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d; want 1", got)
	}
	if !g.HasVertex("A") {
		t.Error("HasVertex(A) = false; want true")
	}
}

func TestAddVertices_Bulk(t *testing.T) {
	g := core.New[string]()
	g.AddVertices("C", "A", "B", "A")
	assert.Equal(t, 3, g.VertexCount())
	// insertion order is preserved, duplicates ignored
	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())
}

func TestAddEdge_ImplicitVertices(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 2))
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
}

func TestAddEdge_OverwritesWeight(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 7))
	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount after re-add = %d; want 1", got)
	}
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
	// undirected mirror sees the new weight too
	w, err = g.EdgeWeight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.New[string]()
	if err := g.AddEdge("A", "A", 1); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if g.HasVertex("A") {
		t.Error("rejected edge must not create vertices")
	}
}

func TestUndirected_Symmetry(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))

	na, err := g.Neighbors("A")
	require.NoError(t, err)
	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Contains(t, na, "B")
	assert.Contains(t, nb, "A")
	assert.True(t, g.HasEdge("B", "A"))
}

func TestDirected_Asymmetry(t *testing.T) {
	g := core.New[string](core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, nb)

	// the reverse orientation is independently insertable
	require.NoError(t, g.AddEdge("B", "A", 9))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestDegree_UndirectedMatchesNeighbors(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "C", 1)

	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.Equal(t, len(nbrs), d, "degree of %s", id)
	}
}

func TestDegree_DirectedTotal(t *testing.T) {
	// A→B, C→B, B→D: B has in 2, out 1, total 3.
	g := core.New[string](core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 1)

	d, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	in, err := g.InDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	out, err := g.OutDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, out)
}

func TestDegrees_Mapping(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	want := map[string]int{"A": 1, "B": 2, "C": 1}
	assert.Equal(t, want, g.Degrees())
}

func TestDegree_MissingVertex(t *testing.T) {
	g := core.New[string]()
	if _, err := g.Degree("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Degree(Z) on empty graph: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.Neighbors("Z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Neighbors(Z): want ErrVertexNotFound, got %v", err)
	}
}

func TestEdgeWeight_Errors(t *testing.T) {
	g := core.New[string]()
	g.AddVertices("A", "B")

	_, err := g.EdgeWeight("A", "B")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.EdgeWeight("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_ReportsEachEdgeOnce(t *testing.T) {
	g := core.New[string]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 3)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge[string]{From: "A", To: "B", Weight: 2}, edges[0])
	assert.Equal(t, core.Edge[string]{From: "B", To: "C", Weight: 3}, edges[1])
}

func TestIntVertices(t *testing.T) {
	// a single consistent identifier type per graph; here: int
	g := core.New[int]()
	require.NoError(t, g.AddEdge(1, 2, core.DefaultWeight))
	require.NoError(t, g.AddEdge(2, 3, core.DefaultWeight))

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{1, 2, 3}, g.Vertices())
}
