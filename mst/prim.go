package mst

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/grafolab/grafo/core"
)

// Prim computes the minimum spanning tree of the component containing root
// by growing a frontier from root: the cheapest edge leaving the visited set
// is taken at each step, using a min-heap with lazy deletion. Ties break
// toward the lower destination ID, so the result is deterministic.
//
// Vertices outside root's component are not spanned; use Kruskal for a full
// forest. The second return value is the total weight of the tree.
func Prim[N cmp.Ordered](g *core.Graph[N], root N) ([]core.Edge[N], float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, root)
	}

	visited := make(map[N]bool, g.VertexCount())
	pq := make(edgeHeap[N], 0, g.EdgeCount())
	heap.Init(&pq)

	push := func(from N) {
		nbrs, _ := g.Neighbors(from)
		for _, to := range nbrs {
			if visited[to] {
				continue
			}
			w, _ := g.EdgeWeight(from, to)
			heap.Push(&pq, core.Edge[N]{From: from, To: to, Weight: w})
		}
	}

	visited[root] = true
	push(root)

	var tree []core.Edge[N]
	var total float64
	for pq.Len() > 0 {
		e := heap.Pop(&pq).(core.Edge[N])
		if visited[e.To] {
			continue // stale frontier entry
		}
		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		push(e.To)
	}

	return tree, total, nil
}

// edgeHeap orders frontier edges by ascending weight, then destination ID.
type edgeHeap[N cmp.Ordered] []core.Edge[N]

func (h edgeHeap[N]) Len() int { return len(h) }

func (h edgeHeap[N]) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}

	return h[i].To < h[j].To
}

func (h edgeHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap[N]) Push(x any) { *h = append(*h, x.(core.Edge[N])) }

func (h *edgeHeap[N]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
