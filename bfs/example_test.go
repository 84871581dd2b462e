package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/core"
)

// ExampleSearch finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleSearch() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "K", 1)
	// Route2: A–E–F–K (3 hops), heavier but shorter in edges
	g.AddEdge("A", "E", 9)
	g.AddEdge("E", "F", 9)
	g.AddEdge("F", "K", 9)
	// Some extra branches
	g.AddEdge("C", "G", 1)
	g.AddEdge("G", "H", 1)
	g.AddEdge("D", "I", 1)
	g.AddEdge("I", "J", 1)

	res, err := bfs.Search(g, "A", "K")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [A E F K] 3
}

// ExampleSearch_sameNode shows the empty-path contract for start == goal.
func ExampleSearch_sameNode() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)

	res, _ := bfs.Search(g, "A", "A")
	fmt.Println(res.Found, len(res.Path))
	// Output:
	// true 0
}

// ExampleSearch_unreachable shows that a disconnected goal is not an error.
func ExampleSearch_unreachable() {
	g := core.NewGraph()
	g.AddEdge("X", "Y", 1)
	g.AddEdge("P", "Q", 1)

	res, err := bfs.Search(g, "X", "Q")
	fmt.Println(res.Found, res.Path, err)
	// Output:
	// false [] <nil>
}
