// Package centrality implements betweenness centrality via Brandes'
// accumulation: one breadth-first shortest-path DAG per source, with
// dependency values propagated back through predecessor lists. Ties in
// shortest-path count split credit proportionally.
package centrality

import (
	"cmp"

	"github.com/grafolab/grafo/core"
)

// Betweenness returns, for every vertex, the fraction of shortest paths
// between all other vertex pairs that pass through it. Paths are measured in
// hops; endpoints receive no credit for their own paths. Values are
// normalized by the number of vertex pairs, so they are comparable across
// graph sizes: graphs with fewer than three vertices score 0 everywhere.
//
// Directed graphs count ordered pairs along edge orientation; undirected
// graphs count unordered pairs.
func Betweenness[N cmp.Ordered](g *core.Graph[N]) map[N]float64 {
	if g == nil {
		return nil
	}
	verts := g.Vertices()
	n := len(verts)
	score := make(map[N]float64, n)
	for _, v := range verts {
		score[v] = 0
	}

	for _, s := range verts {
		accumulate(g, s, score)
	}

	// Raw sums count ordered (s,t) pairs; undirected traversal visits each
	// unordered pair twice, so a single 1/((n-1)(n-2)) factor normalizes
	// both orientations to a fraction of pairs.
	if n > 2 {
		scale := 1 / (float64(n-1) * float64(n-2))
		for v := range score {
			score[v] *= scale
		}
	} else {
		for v := range score {
			score[v] = 0
		}
	}

	return score
}

// accumulate adds the dependency of source s on every other vertex to score.
func accumulate[N cmp.Ordered](g *core.Graph[N], s N, score map[N]float64) {
	n := g.VertexCount()
	pred := make(map[N][]N, n)      // shortest-path predecessors
	sigma := make(map[N]float64, n) // number of shortest paths from s
	dist := make(map[N]int, n)
	stack := make([]N, 0, n) // vertices in non-decreasing distance order

	sigma[s] = 1
	dist[s] = 0
	queue := []N{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		stack = append(stack, u)
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			d, seen := dist[v]
			if !seen {
				d = dist[u] + 1
				dist[v] = d
				queue = append(queue, v)
			}
			if d == dist[u]+1 {
				sigma[v] += sigma[u]
				pred[v] = append(pred[v], u)
			}
		}
	}

	// Back-propagate dependencies in reverse BFS order.
	delta := make(map[N]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if w != s {
			score[w] += delta[w]
		}
	}
}
