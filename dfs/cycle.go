package dfs

import (
	"cmp"
	"slices"

	"github.com/grafolab/grafo/core"
)

// HasCycle reports whether g contains at least one cycle.
//
// Detection is DFS with three-color marking: reaching a gray (in-progress)
// vertex over a traversal edge is a back edge, hence a cycle. For undirected
// graphs the edge back to the immediate parent is not a back edge and is
// skipped; the store forbids parallel edges, so one skip per vertex is
// sufficient. The walk keeps an explicit frame stack and does not recurse,
// whatever the graph depth. A nil or empty graph has no cycle.
func HasCycle[N cmp.Ordered](g *core.Graph[N]) bool {
	if g == nil {
		return false
	}
	state := make(map[N]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] == white && hasBackEdge(g, v, state) {
			return true
		}
	}

	return false
}

// frame is one suspended vertex on the explicit DFS stack: its remaining
// neighbors and the tree edge it was entered through.
type frame[N cmp.Ordered] struct {
	id        N
	parent    N
	hasParent bool // false for roots and after the parent edge was skipped
	nbrs      []N
	next      int
}

// hasBackEdge walks the DFS tree below root, returning true on the first
// edge into a gray vertex.
func hasBackEdge[N cmp.Ordered](g *core.Graph[N], root N, state map[N]int) bool {
	rootNbrs, _ := g.Neighbors(root)
	stack := []frame[N]{{id: root, nbrs: rootNbrs}}
	state[root] = gray

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.nbrs) {
			state[f.id] = black
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := f.nbrs[f.next]
		f.next++

		if !g.Directed() && f.hasParent && nbr == f.parent {
			f.hasParent = false // skip the tree edge back to the parent once
			continue
		}
		switch state[nbr] {
		case white:
			state[nbr] = gray
			nbrs, _ := g.Neighbors(nbr)
			stack = append(stack, frame[N]{id: nbr, parent: f.id, hasParent: true, nbrs: nbrs})
		case gray:
			return true
		}
	}

	return false
}

// SimpleCycles enumerates every elementary cycle of a directed graph: closed
// walks along edge orientation that revisit no vertex except the first. Each
// cycle is reported once, as a closed sequence rooted at its earliest-inserted
// vertex; roots are emitted in vertex insertion order. The search extends
// elementary paths only, so its recursion is bounded by the vertex count.
//
// Returns ErrNilGraph for a nil graph and ErrUndirectedGraph for undirected
// input. An acyclic graph yields an empty list.
func SimpleCycles[N cmp.Ordered](g *core.Graph[N]) ([][]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	order := g.Vertices()
	pos := make(map[N]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	var (
		cycles [][]N
		path   []N
		root   N
	)
	onPath := make(map[N]bool, len(order))

	var extend func(u N)
	extend = func(u N) {
		path = append(path, u)
		onPath[u] = true
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if pos[v] < pos[root] {
				continue // that cycle is owned by an earlier root
			}
			if v == root {
				cycles = append(cycles, append(slices.Clone(path), root))
				continue
			}
			if !onPath[v] {
				extend(v)
			}
		}
		onPath[u] = false
		path = path[:len(path)-1]
	}

	for _, r := range order {
		root = r
		extend(r)
	}

	return cycles, nil
}

// CycleBasis enumerates a cycle basis of an undirected graph: a minimal set
// of cycles from which every cycle can be generated. It builds a spanning
// forest, then closes each non-tree edge with the forest path between its
// endpoints. Each cycle is a closed vertex sequence returning to its start,
// with no repeated interior vertex.
//
// Returns ErrNilGraph for a nil graph and ErrDirectedGraph for directed
// input. An acyclic graph yields an empty basis.
func CycleBasis[N cmp.Ordered](g *core.Graph[N]) ([][]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	// Spanning forest over every component, recording parent and depth.
	n := g.VertexCount()
	parent := make(map[N]N, n)
	depth := make(map[N]int, n)
	visited := make(map[N]bool, n)
	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		visited[root] = true
		depth[root] = 0
		queue := []N{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if visited[v] {
					continue
				}
				visited[v] = true
				parent[v] = u
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}

	// Every edge outside the forest closes exactly one basis cycle.
	var basis [][]N
	for _, e := range g.Edges() {
		if pu, ok := parent[e.To]; ok && pu == e.From {
			continue // tree edge
		}
		if pv, ok := parent[e.From]; ok && pv == e.To {
			continue // tree edge
		}
		basis = append(basis, closeChord(e.From, e.To, parent, depth))
	}

	return basis, nil
}

// closeChord returns the cycle formed by the non-tree edge u—v and the forest
// path between u and v, as a closed sequence [u, …, lca, …, v, u].
func closeChord[N cmp.Ordered](u, v N, parent map[N]N, depth map[N]int) []N {
	pathU := []N{u}
	pathV := []N{v}
	// Lift the deeper endpoint until both sides sit at equal depth.
	for depth[last(pathU)] > depth[last(pathV)] {
		pathU = append(pathU, parent[last(pathU)])
	}
	for depth[last(pathV)] > depth[last(pathU)] {
		pathV = append(pathV, parent[last(pathV)])
	}
	// Climb in lockstep to the lowest common ancestor.
	for last(pathU) != last(pathV) {
		pathU = append(pathU, parent[last(pathU)])
		pathV = append(pathV, parent[last(pathV)])
	}

	cycle := pathU // ends at the common ancestor
	for i := len(pathV) - 2; i >= 0; i-- {
		cycle = append(cycle, pathV[i])
	}
	cycle = append(cycle, u)

	return cycle
}

func last[N cmp.Ordered](s []N) N { return s[len(s)-1] }
