package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"

	"github.com/grafolab/grafo/core"
)

// Distances computes the minimum cumulative weight from source to every
// reachable vertex. Unreachable vertices are omitted from the result;
// dist[source] is always 0.
//
// All edge weights must be non-negative; a negative weight anywhere in the
// graph is rejected with ErrNegativeWeight before relaxation begins.
func Distances[N cmp.Ordered](g *core.Graph[N], source N) (map[N]float64, error) {
	dist, _, err := run(g, source)

	return dist, err
}

// Path reconstructs the minimum-weight path from source to goal, together
// with its total weight. When several shortest paths tie, the one discovered
// first under the lowest-ID-first relaxation order is returned.
//
// Returns ErrNoPath when goal is unreachable from source and
// ErrVertexNotFound when either endpoint is absent.
func Path[N cmp.Ordered](g *core.Graph[N], source, goal N) ([]N, float64, error) {
	if g != nil && !g.HasVertex(goal) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, goal)
	}
	dist, prev, err := run(g, source)
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[goal]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, goal)
	}

	// Walk predecessors back from goal, then reverse.
	path := []N{goal}
	for cur := goal; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, d, nil
}

// PathLength returns the total weight of the shortest path from source to
// goal; it equals Distances(g, source)[goal] whenever goal is reachable.
// Returns ErrNoPath when it is not.
func PathLength[N cmp.Ordered](g *core.Graph[N], source, goal N) (float64, error) {
	_, d, err := Path(g, source, goal)

	return d, err
}

// run is the shared relaxation loop producing distances and predecessors.
func run[N cmp.Ordered](g *core.Graph[N], source N) (map[N]float64, map[N]N, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	// Fail fast on any negative weight before touching the heap.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: %v->%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	dist := make(map[N]float64, n)
	prev := make(map[N]N, n)
	settled := make(map[N]bool, n)

	pq := make(minHeap[N], 0, n)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, heapItem[N]{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(heapItem[N])
		u := item.id
		if settled[u] {
			continue // stale entry from lazy decrease-key
		}
		settled[u] = true

		nbrs, _ := g.Neighbors(u)
		slices.Sort(nbrs) // deterministic tie-breaking: lowest ID relaxes first
		for _, v := range nbrs {
			w, err := g.EdgeWeight(u, v)
			if err != nil {
				return nil, nil, fmt.Errorf("dijkstra: edge %v->%v: %w", u, v, err)
			}
			next := dist[u] + w
			if cur, seen := dist[v]; seen && next >= cur {
				continue
			}
			dist[v] = next
			prev[v] = u
			heap.Push(&pq, heapItem[N]{id: v, dist: next})
		}
	}

	return dist, prev, nil
}

// heapItem is a vertex with its tentative distance from the source.
type heapItem[N cmp.Ordered] struct {
	id   N
	dist float64
}

// minHeap orders heapItems by ascending distance, then ascending vertex ID,
// so extraction order is fully deterministic.
type minHeap[N cmp.Ordered] []heapItem[N]

func (h minHeap[N]) Len() int { return len(h) }

func (h minHeap[N]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id < h[j].id
}

func (h minHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap[N]) Push(x any) { *h = append(*h, x.(heapItem[N])) }

func (h *minHeap[N]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
