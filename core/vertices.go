package core

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
func (g *Graph[N]) AddVertex(id N) {
	if _, exists := g.pos[id]; exists {
		return
	}
	g.pos[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[N]float64)
}

// AddVertices applies AddVertex to each element of ids.
func (g *Graph[N]) AddVertices(ids ...N) {
	for _, id := range ids {
		g.AddVertex(id)
	}
}

// HasVertex reports whether the vertex id exists.
func (g *Graph[N]) HasVertex(id N) bool {
	_, ok := g.pos[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order. This is the stable
// ordering used by matrix exports. The returned slice is a copy.
func (g *Graph[N]) Vertices() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph[N]) VertexCount() int { return len(g.order) }

// Degree returns the degree of the given vertex.
//
// Undirected graphs: the number of edges incident to id.
// Directed graphs: the total degree, in-degree plus out-degree; use
// InDegree/OutDegree for the split.
//
// Returns ErrVertexNotFound if id is absent.
func (g *Graph[N]) Degree(id N) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return len(g.succ[id]) + g.indeg[id], nil
	}

	return len(g.succ[id]), nil
}

// InDegree returns the number of incoming edges of id. For undirected graphs
// it equals Degree. Returns ErrVertexNotFound if id is absent.
func (g *Graph[N]) InDegree(id N) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return g.indeg[id], nil
	}

	return len(g.succ[id]), nil
}

// OutDegree returns the number of outgoing edges of id. For undirected graphs
// it equals Degree. Returns ErrVertexNotFound if id is absent.
func (g *Graph[N]) OutDegree(id N) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	return len(g.succ[id]), nil
}

// Degrees returns a mapping from every vertex to its degree (total degree for
// directed graphs).
func (g *Graph[N]) Degrees() map[N]int {
	out := make(map[N]int, len(g.order))
	for _, id := range g.order {
		d := len(g.succ[id])
		if g.directed {
			d += g.indeg[id]
		}
		out[id] = d
	}

	return out
}
