// Package dijkstra_test provides examples demonstrating uniform-cost search and A*.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/heuristic"
)

// ExampleUniformCost picks the cheap two-hop route over the expensive direct edge.
func ExampleUniformCost() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 5)

	res, err := dijkstra.UniformCost(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [A B C] 2
}

// ExampleAStar runs A* with the Euclidean heuristic on a small road map.
// The detour through W is longer than the straight road through M.
func ExampleAStar() {
	g := core.NewGraph()
	g.SetPosition("S", core.Point{X: 0, Y: 0})
	g.SetPosition("M", core.Point{X: 3, Y: 0})
	g.SetPosition("W", core.Point{X: 3, Y: 4})
	g.SetPosition("G", core.Point{X: 6, Y: 0})
	g.AddEdge("S", "M", 3)
	g.AddEdge("M", "G", 3)
	g.AddEdge("S", "W", 5)
	g.AddEdge("W", "G", 5)

	res, err := dijkstra.AStar(g, "S", "G", heuristic.Euclidean)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost, res.Expanded)
	// Output: [S M G] 6 2
}

// ExampleAStar_missingPosition shows the error raised when the geometric
// heuristic meets a vertex without coordinates.
func ExampleAStar_missingPosition() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)

	_, err := dijkstra.AStar(g, "A", "B", nil)
	fmt.Println(err)
	// Output: heuristic: missing position data: core: vertex has no position: "A"
}
