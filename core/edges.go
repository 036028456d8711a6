package core

// AddEdge inserts the edge u→v with the given weight, implicitly creating
// missing endpoints. For undirected graphs the edge is traversable both ways
// and counted once. Re-adding an existing edge overwrites its weight; the
// graph holds at most one weight per logical edge.
//
// Returns ErrSelfLoop when u == v; self-loops are not supported.
func (g *Graph[N]) AddEdge(u, v N, weight float64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddVertex(u)
	g.AddVertex(v)

	if _, exists := g.adj[u][v]; exists {
		g.adj[u][v] = weight
		if !g.directed {
			g.adj[v][u] = weight
		}

		return nil
	}

	g.adj[u][v] = weight
	g.succ[u] = append(g.succ[u], v)
	if g.directed {
		g.indeg[v]++
	} else {
		g.adj[v][u] = weight
		g.succ[v] = append(g.succ[v], u)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge u→v exists. For undirected graphs the
// orientation is irrelevant. Absent endpoints report false.
func (g *Graph[N]) HasEdge(u, v N) bool {
	_, ok := g.adj[u][v]

	return ok
}

// EdgeWeight returns the weight of the edge u→v.
// Returns ErrVertexNotFound when either endpoint is absent,
// ErrEdgeNotFound when both exist but the edge does not.
func (g *Graph[N]) EdgeWeight(u, v N) (float64, error) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the vertices reachable from id via one edge, respecting
// directedness (directed graphs list out-neighbors only). The order is the
// edge discovery order, which is deterministic for a fixed mutation sequence.
// The returned slice is a copy.
//
// Returns ErrVertexNotFound if id is absent.
func (g *Graph[N]) Neighbors(id N) ([]N, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	out := make([]N, len(g.succ[id]))
	copy(out, g.succ[id])

	return out, nil
}

// Edges returns every logical edge exactly once, with its weight. The order
// is deterministic: endpoints in insertion order, then edge discovery order.
// For undirected graphs each edge is reported from the endpoint inserted
// first.
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.edgeCount)
	for _, u := range g.order {
		for _, v := range g.succ[u] {
			if !g.directed && g.pos[v] < g.pos[u] {
				continue // already reported from the earlier endpoint
			}
			out = append(out, Edge[N]{From: u, To: v, Weight: g.adj[u][v]})
		}
	}

	return out
}

// EdgeCount returns the number of logical edges in the graph.
func (g *Graph[N]) EdgeCount() int { return g.edgeCount }
