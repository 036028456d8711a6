package bfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/grafolab/grafo/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[N cmp.Ordered] struct {
	id    N
	depth int
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. A vertex is marked visited when enqueued, so
// each vertex appears in Result.Order exactly once. On a disconnected graph
// only start's component (directed: reachable set) is covered; that is
// expected, not an error.
//
// Returns ErrNilGraph or ErrStartNotFound for invalid input, or any error
// produced by a user-supplied visit hook.
func BFS[N cmp.Ordered](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.VertexCount()
	res := &Result[N]{
		Order:  make([]N, 0, n),
		Depth:  make(map[N]int, n),
		Parent: make(map[N]N, n),
	}

	queue := make([]queueItem[N], 0, n)
	visited := make(map[N]bool, n)

	visited[start] = true
	res.Depth[start] = 0
	queue = append(queue, queueItem[N]{id: start})

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: visit %v: %w", item.id, err)
		}

		nbrs, err := g.Neighbors(item.id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
		}
		if o.SortNeighbors {
			slices.Sort(nbrs)
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			next := item.depth + 1
			if o.MaxDepth > 0 && next > o.MaxDepth {
				continue
			}
			visited[nbr] = true
			res.Depth[nbr] = next
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem[N]{id: nbr, depth: next})
		}
	}

	return res, nil
}

// HasPath reports whether v is reachable from u, without reconstructing the
// path. Returns ErrVertexNotFound when either endpoint is absent.
func HasPath[N cmp.Ordered](g *core.Graph[N], u, v N) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.HasVertex(u) {
		return false, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return false, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if u == v {
		return true, nil
	}

	queue := []N{u}
	visited := map[N]bool{u: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, _ := g.Neighbors(cur)
		for _, nbr := range nbrs {
			if nbr == v {
				return true, nil
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return false, nil
}
