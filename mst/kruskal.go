package mst

import (
	"cmp"
	"sort"

	"github.com/grafolab/grafo/core"
)

// Kruskal computes a minimum spanning forest of an undirected weighted graph
// using a disjoint-set (union-find) structure with path compression and
// union by rank. Edges are considered in ascending weight order; the stable
// sort preserves the graph's deterministic edge order for equal weights, so
// the result is reproducible for a fixed graph.
//
// Connected input yields a spanning tree with |V|-1 edges; disconnected input
// yields one tree per component. The second return value is the total weight
// of the forest.
func Kruskal[N cmp.Ordered](g *core.Graph[N]) ([]core.Edge[N], float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}

	vertices := g.Vertices()
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// Disjoint-set over vertex IDs.
	parent := make(map[N]N, len(vertices))
	rank := make(map[N]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u N) N {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v N) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	forest := make([]core.Edge[N], 0, len(vertices))
	var total float64
	for _, e := range edges {
		if find(e.From) == find(e.To) {
			continue // would close a cycle
		}
		union(e.From, e.To)
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == len(vertices)-1 {
			break // a single spanning tree is complete
		}
	}

	return forest, total, nil
}
