// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, unweighted depths, and parent links for path reconstruction.
package bfs

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrVertexNotFound is returned by HasPath when an endpoint is absent.
	ErrVertexNotFound = errors.New("bfs: vertex not found")

	// ErrNoPath is returned by Result.PathTo for unreached destinations.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option configures BFS behavior via functional arguments.
type Option[N cmp.Ordered] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N cmp.Ordered] struct {
	// SortNeighbors, if true, visits each vertex's neighbors in ascending
	// ID order. When false, neighbors follow the graph's edge discovery
	// order, which is still deterministic for a fixed mutation sequence.
	SortNeighbors bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// OnVisit is called when a vertex is visited, in visit order. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(id N, depth int) error
}

// DefaultOptions returns Options with unsorted neighbors, no depth limit,
// and a no-op visit hook.
func DefaultOptions[N cmp.Ordered]() Options[N] {
	return Options[N]{
		SortNeighbors: false,
		MaxDepth:      0,
		OnVisit:       func(N, int) error { return nil },
	}
}

// WithSortedNeighbors visits neighbors in ascending ID order, making the
// visit order a fixed total order regardless of edge insertion history.
func WithSortedNeighbors[N cmp.Ordered]() Option[N] {
	return func(o *Options[N]) { o.SortNeighbors = true }
}

// WithMaxDepth stops the search beyond depth d; 0 means no limit.
func WithMaxDepth[N cmp.Ordered](d int) Option[N] {
	return func(o *Options[N]) { o.MaxDepth = d }
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the search.
func WithOnVisit[N cmp.Ordered](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence, each exactly once.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree;
//     the start vertex has no entry.
type Result[N cmp.Ordered] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// PathTo reconstructs the path from the start vertex to dest by walking
// parent links backwards. Returns ErrNoPath if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
