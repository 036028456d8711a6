// Package matrix exports a graph's adjacency structure as a dense numeric
// matrix, the read-only surface consumed by rendering and analysis tooling.
package matrix

import (
	"cmp"
	"errors"

	"github.com/grafolab/grafo/core"
)

// ErrNilGraph indicates that a nil graph pointer was passed.
var ErrNilGraph = errors.New("matrix: graph is nil")

// Adjacency is a |V|×|V| weight matrix. Rows and columns are indexed by the
// graph's vertex insertion order, recorded in Index; Data[i][j] holds the
// weight of the edge Index[i]→Index[j], or 0 when no such edge exists.
// For undirected graphs the matrix is symmetric.
type Adjacency[N cmp.Ordered] struct {
	Index []N
	Data  [][]float64
}

// NewAdjacency builds the adjacency matrix of g.
func NewAdjacency[N cmp.Ordered](g *core.Graph[N]) (*Adjacency[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	index := g.Vertices()
	pos := make(map[N]int, len(index))
	for i, id := range index {
		pos[id] = i
	}

	data := make([][]float64, len(index))
	for i := range data {
		data[i] = make([]float64, len(index))
	}
	for _, e := range g.Edges() {
		data[pos[e.From]][pos[e.To]] = e.Weight
		if !g.Directed() {
			data[pos[e.To]][pos[e.From]] = e.Weight
		}
	}

	return &Adjacency[N]{Index: index, Data: data}, nil
}

// Weight returns the matrix cell for the pair (u, v); absent vertices and
// absent edges both read as 0, mirroring the matrix itself.
func (a *Adjacency[N]) Weight(u, v N) float64 {
	iu, iv := -1, -1
	for i, id := range a.Index {
		if id == u {
			iu = i
		}
		if id == v {
			iv = i
		}
	}
	if iu < 0 || iv < 0 {
		return 0
	}

	return a.Data[iu][iv]
}
