// Package connectivity answers structural questions about a core.Graph:
// whether it is connected, what its components are, and whether it admits a
// two-coloring (bipartiteness).
//
// Directed graphs are analyzed under weak connectivity: every edge is treated
// as undirected for these checks. Strong connectivity is out of scope here.
package connectivity

import (
	"cmp"
	"slices"

	"github.com/grafolab/grafo/core"
)

// IsConnected reports whether a single traversal from an arbitrary vertex
// reaches every vertex. For directed graphs this is weak connectivity.
// Empty and single-vertex graphs are connected.
func IsConnected[N cmp.Ordered](g *core.Graph[N]) bool {
	if g == nil || g.VertexCount() == 0 {
		return true
	}
	adj := undirectedView(g)
	verts := g.Vertices()
	visited := make(map[N]bool, len(verts))
	flood(adj, verts[0], visited)

	return len(visited) == g.VertexCount()
}

// Components returns the (weak) connected components of g. Each component is
// sorted ascending, and components are ordered by their smallest member.
func Components[N cmp.Ordered](g *core.Graph[N]) [][]N {
	if g == nil {
		return nil
	}
	adj := undirectedView(g)
	visited := make(map[N]bool, g.VertexCount())

	var comps [][]N
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		members := flood(adj, v, visited)
		slices.Sort(members)
		comps = append(comps, members)
	}
	slices.SortFunc(comps, func(a, b []N) int {
		return cmp.Compare(a[0], b[0])
	})

	return comps
}

// IsBipartite reports whether the vertices admit a two-coloring with no edge
// joining two same-colored vertices. Every component is checked; directed
// edges are treated as undirected. An empty graph is bipartite.
func IsBipartite[N cmp.Ordered](g *core.Graph[N]) bool {
	if g == nil {
		return true
	}
	adj := undirectedView(g)
	color := make(map[N]int, g.VertexCount())

	for _, root := range g.Vertices() {
		if _, seen := color[root]; seen {
			continue
		}
		color[root] = 0
		queue := []N{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				c, seen := color[v]
				if !seen {
					color[v] = 1 - color[u]
					queue = append(queue, v)
					continue
				}
				if c == color[u] {
					return false // odd cycle
				}
			}
		}
	}

	return true
}

// undirectedView builds a symmetric adjacency listing from the edge set,
// ignoring orientation. Neighbor order follows the deterministic edge order.
func undirectedView[N cmp.Ordered](g *core.Graph[N]) map[N][]N {
	adj := make(map[N][]N, g.VertexCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj
}

// flood marks everything reachable from start in adj and returns the members.
func flood[N cmp.Ordered](adj map[N][]N, start N, visited map[N]bool) []N {
	visited[start] = true
	members := []N{start}
	queue := []N{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if visited[v] {
				continue
			}
			visited[v] = true
			members = append(members, v)
			queue = append(queue, v)
		}
	}

	return members
}
