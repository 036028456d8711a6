// Package dfs implements depth-first traversal on a core.Graph, plus cycle
// detection, undirected cycle-basis enumeration, and directed elementary-cycle
// enumeration built on the same machinery.
package dfs

import (
	"cmp"
	"errors"
)

// Vertex visitation states for cycle detection.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// Sentinel errors for DFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("dfs: start vertex not found")

	// ErrDirectedGraph is returned by CycleBasis: a cycle basis is defined
	// here for undirected graphs only.
	ErrDirectedGraph = errors.New("dfs: cycle basis requires an undirected graph")

	// ErrUndirectedGraph is returned by SimpleCycles, which enumerates
	// elementary cycles along edge orientation.
	ErrUndirectedGraph = errors.New("dfs: simple cycle enumeration requires a directed graph")
)

// Option configures DFS behavior via functional arguments.
type Option[N cmp.Ordered] func(*Options[N])

// Options holds parameters and callbacks to customize DFS execution.
type Options[N cmp.Ordered] struct {
	// SortNeighbors, if true, explores each vertex's neighbors in ascending
	// ID order. When false, neighbors follow the graph's edge discovery
	// order, which is still deterministic for a fixed mutation sequence.
	SortNeighbors bool

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// OnVisit is called when a vertex is visited, in discovery order. If it
	// returns an error, the traversal aborts and propagates that error.
	OnVisit func(id N, depth int) error
}

// DefaultOptions returns Options with unsorted neighbors, no depth limit,
// and a no-op visit hook.
func DefaultOptions[N cmp.Ordered]() Options[N] {
	return Options[N]{
		SortNeighbors: false,
		MaxDepth:      -1,
		OnVisit:       func(N, int) error { return nil },
	}
}

// WithSortedNeighbors explores neighbors in ascending ID order.
func WithSortedNeighbors[N cmp.Ordered]() Option[N] {
	return func(o *Options[N]) { o.SortNeighbors = true }
}

// WithMaxDepth limits recursion depth to limit; negative means no limit.
func WithMaxDepth[N cmp.Ordered](limit int) Option[N] {
	return func(o *Options[N]) { o.MaxDepth = limit }
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the traversal.
func WithOnVisit[N cmp.Ordered](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N cmp.Ordered] struct {
	// Order records vertices in discovery (preorder) sequence; a full branch
	// is explored before backtracking.
	Order []N

	// Depth maps each vertex ID to its recursion depth from the start.
	Depth map[N]int

	// Parent maps each vertex ID to the vertex it was discovered from;
	// the start vertex has no entry.
	Parent map[N]N
}
