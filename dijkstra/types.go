// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs
// with non-negative edge weights.
//
// Vertices are settled in order of increasing distance from the source using
// a min-heap priority queue with the lazy decrease-key strategy: improved
// distances push a fresh heap entry and stale entries are skipped when
// popped. Ties between equal-distance candidates break toward the lower
// vertex ID, so results are deterministic for a fixed graph.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra

import "errors"

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil graph pointer was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNegativeWeight indicates a negative edge weight; Dijkstra's
	// correctness requires non-negative weights, so this is rejected before
	// any relaxation begins.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNoPath indicates that the goal is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)
