// Package mst computes minimum spanning trees of undirected weighted graphs
// via Kruskal's (edge-sorted, union-find) or Prim's (frontier-expanding,
// min-heap) construction.
//
// On a disconnected graph Kruskal returns a minimum spanning forest, one tree
// per component; Prim spans only the root's component.
package mst

import "errors"

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates that a nil graph pointer was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates directed input; spanning trees are defined
	// here for undirected graphs only.
	ErrDirectedGraph = errors.New("mst: directed graphs not supported")

	// ErrVertexNotFound indicates that the requested root vertex is absent.
	ErrVertexNotFound = errors.New("mst: root vertex not found")
)
