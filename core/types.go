// Package core defines the central Graph and Edge types and provides
// primitives for building and querying graphs.
//
// A Graph is generic over its node identifier type N, which must be ordered
// (cmp.Ordered) so that algorithms can offer deterministic neighbor ordering
// and matrix exports can index rows stably. Directedness is fixed at
// construction time via WithDirected and is immutable for the graph's
// lifetime.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - edge endpoints are equal (self-loops unsupported).
package core

import (
	"cmp"
	"errors"
)

// DefaultWeight is the weight assigned to edges when the caller has no
// meaningful cost to attach (the unweighted-graph convention).
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge with equal endpoints was attempted.
	ErrSelfLoop = errors.New("core: self-loops not supported")
)

// Edge represents a connection between two vertices.
//
// For an undirected graph an Edge reports one logical connection; From is the
// endpoint that was inserted into the graph first. For a directed graph the
// orientation From→To is significant.
type Edge[N cmp.Ordered] struct {
	// From is the source vertex ID.
	From N

	// To is the destination vertex ID.
	To N

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Option configures behavior of a Graph before creation.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// It holds at most one weight per logical edge: re-adding an existing edge
// overwrites its weight. Undirected adjacency is symmetric by construction;
// both orientations are written on insert, never repaired afterwards.
//
// Graph is not safe for concurrent mutation. Algorithms in sibling packages
// only read it, so independent queries may run in parallel as long as no
// mutation interleaves.
type Graph[N cmp.Ordered] struct {
	directed bool

	order []N       // vertex IDs in insertion order
	pos   map[N]int // vertex ID → insertion position

	adj   map[N]map[N]float64 // u → v → weight (mirrored when undirected)
	succ  map[N][]N           // u → neighbor IDs in discovery order
	indeg map[N]int           // directed in-degree (unused when undirected)

	edgeCount int
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected.
func New[N cmp.Ordered](opts ...Option) *Graph[N] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N]{
		directed: o.directed,
		pos:      make(map[N]int),
		adj:      make(map[N]map[N]float64),
		succ:     make(map[N][]N),
		indeg:    make(map[N]int),
	}
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph[N]) Directed() bool { return g.directed }
