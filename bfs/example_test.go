package bfs_test

import (
	"fmt"

	"github.com/grafolab/grafo/bfs"
	"github.com/grafolab/grafo/core"
)

// ExampleBFS traverses a small network level by level with a fixed
// neighbor order.
func ExampleBFS() {
	g := core.New[string]()
	_ = g.AddEdge("A", "C", core.DefaultWeight)
	_ = g.AddEdge("A", "B", core.DefaultWeight)
	_ = g.AddEdge("B", "D", core.DefaultWeight)
	_ = g.AddEdge("C", "D", core.DefaultWeight)

	res, _ := bfs.BFS(g, "A", bfs.WithSortedNeighbors[string]())
	fmt.Println(res.Order)
	// Output: [A B C D]
}

// ExampleHasPath checks reachability without reconstructing a path.
func ExampleHasPath() {
	g := core.New[string](core.WithDirected(true))
	_ = g.AddEdge("A", "B", core.DefaultWeight)

	forward, _ := bfs.HasPath(g, "A", "B")
	backward, _ := bfs.HasPath(g, "B", "A")
	fmt.Println(forward, backward)
	// Output: true false
}
