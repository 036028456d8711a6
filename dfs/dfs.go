package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/grafolab/grafo/core"
)

// walker encapsulates mutable DFS state.
type walker[N cmp.Ordered] struct {
	graph   *core.Graph[N]
	opts    Options[N]
	visited map[N]bool
	res     *Result[N]
}

// DFS performs depth-first search on g starting from start. Each vertex is
// recorded once, in discovery order. On a disconnected graph only start's
// component (directed: reachable set) is covered; that is expected, not an
// error.
//
// Returns ErrNilGraph or ErrStartNotFound for invalid input, or any error
// produced by a user-supplied visit hook.
func DFS[N cmp.Ordered](g *core.Graph[N], start N, opts ...Option[N]) (*Result[N], error) {
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
	w := &walker[N]{
		graph:   g,
		opts:    o,
		visited: make(map[N]bool, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	if err := w.traverse(start, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// traverse visits id at the given depth, then recurses into unvisited
// neighbors, exploring a full branch before backtracking.
func (w *walker[N]) traverse(id N, depth int) error {
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: visit %v: %w", id, err)
	}

	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
	}
	if w.opts.SortNeighbors {
		slices.Sort(nbrs)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.res.Parent[nbr] = id
		if err = w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	return nil
}
