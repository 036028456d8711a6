// Package grafo is an in-memory engine for classical graph theory: a mutable
// graph container plus the standard set of algorithms that traverse and
// analyze it.
//
// The container supports directed and undirected, weighted and unweighted
// graphs, generic over any ordered node identifier type. Algorithms are
// read-only over the container and return value results; nothing mutates a
// graph besides its owner.
//
// Subpackages:
//
//	core/         — Graph and Edge types, mutation and structural queries
//	bfs/          — breadth-first traversal, reachability
//	dfs/          — depth-first traversal, cycle detection, cycle enumeration
//	dijkstra/     — shortest paths on non-negative weights
//	mst/          — minimum spanning trees and forests (Kruskal, Prim)
//	matrix/       — adjacency-matrix export
//	centrality/   — betweenness centrality
//	connectivity/ — connectivity, components, bipartiteness
//
// Quick example:
//
//	g := core.New[string]()
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "D", 4)
//	g.AddEdge("D", "G", 2)
//	path, length, _ := dijkstra.Path(g, "A", "G") // [A B D G], 8
//
// Rendering, geometric layout, and text output are deliberately outside this
// module; core.Vertices, core.Edges, and core.Directed expose everything a
// visualization layer needs.
package grafo
