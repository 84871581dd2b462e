package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// cycle4 builds the unit-weight cycle A-B-C-D-A.
func cycle4() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "A", 1)
	return g
}

// TestSearch_Errors verifies that invalid inputs are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search(nil, "A", "B"); !errors.Is(err, search.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	if _, err := bfs.Search(nil, "A", "A"); !errors.Is(err, search.ErrNilGraph) {
		t.Errorf("nil graph, same node: want ErrNilGraph, got %v", err)
	}
	g := cycle4()
	if _, err := bfs.Search(g, "missing", "A"); !errors.Is(err, search.ErrVertexNotFound) {
		t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
	}
	if _, err := bfs.Search(g, "A", "missing"); !errors.Is(err, search.ErrVertexNotFound) {
		t.Errorf("missing goal: want ErrVertexNotFound, got %v", err)
	}
}

// TestSearch_SameNode checks the empty-path contract for start == goal.
func TestSearch_SameNode(t *testing.T) {
	res, err := bfs.Search(cycle4(), "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || res.Path == nil || len(res.Path) != 0 || res.Cost != 0 {
		t.Errorf("same node: got %+v; want found empty path", res)
	}
}

// TestSearch_Cycle accepts either minimal path and checks the deterministic choice.
func TestSearch_Cycle(t *testing.T) {
	res, err := bfs.Search(cycle4(), "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	viaB, viaD := []string{"A", "B", "C"}, []string{"A", "D", "C"}
	if !reflect.DeepEqual(res.Path, viaB) && !reflect.DeepEqual(res.Path, viaD) {
		t.Fatalf("Path = %v; want %v or %v", res.Path, viaB, viaD)
	}
	// ascending neighbor order makes the choice reproducible
	if !reflect.DeepEqual(res.Path, viaB) {
		t.Errorf("Path = %v; want deterministic %v", res.Path, viaB)
	}
	if res.Cost != 2 {
		t.Errorf("Cost = %v; want 2 edges", res.Cost)
	}
}

// TestSearch_IgnoresWeights: the heavy direct edge still wins on edge count.
func TestSearch_IgnoresWeights(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 5)

	res, err := bfs.Search(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "C"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestSearch_ShortestOfTwoRoutes picks the 3-hop route over the 4-hop one.
func TestSearch_ShortestOfTwoRoutes(t *testing.T) {
	g := core.NewGraph()
	// A–B–C–D–K (4 hops) and A–E–F–K (3 hops)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}, {"A", "E"}, {"E", "F"}, {"F", "K"}} {
		g.AddEdge(e[0], e[1], 1)
	}
	res, err := bfs.Search(g, "A", "K")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "E", "F", "K"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestSearch_Unreachable ensures a disconnected goal is a result, not an error.
func TestSearch_Unreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("X", "Y", 1) // component 1
	g.AddEdge("P", "Q", 1) // component 2

	res, err := bfs.Search(g, "X", "Q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Path != nil {
		t.Errorf("got %+v; want not found", res)
	}
	if res.Expanded != 2 {
		t.Errorf("Expanded = %d; want 2 (X, Y)", res.Expanded)
	}
}

// TestSearch_Idempotent runs the same query twice.
func TestSearch_Idempotent(t *testing.T) {
	g := cycle4()
	first, err1 := bfs.Search(g, "B", "D")
	second, err2 := bfs.Search(g, "B", "D")
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

// TestSearch_OnExpand asserts that the hook sees depths in non-decreasing order.
func TestSearch_OnExpand(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	var got []string
	_, err := bfs.Search(g, "A", "D", search.WithOnExpand(func(id string, depth float64) {
		got = append(got, fmt.Sprintf("%s@%v", id, depth))
	}))
	if err != nil {
		t.Fatal(err)
	}
	// D is found on discovery from C and never expanded
	if want := []string{"A@0", "B@1", "C@2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expansions = %v; want %v", got, want)
	}
}

// TestSearch_Cancellation verifies that a cancelled context halts the search.
func TestSearch_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Search(g, "v0", "v100", search.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestSearch_ConcurrentSafety ensures concurrent searches on one graph do not interfere.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g := cycle4()
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.Search(g, "A", "C")
			if err == nil && len(res.Path) != 3 {
				err = fmt.Errorf("path %v", res.Path)
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: %v", i, err)
		}
	}
}
