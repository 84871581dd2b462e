// Package search defines the types shared by every pathsearch algorithm:
// the Result value, functional options (logging, metrics, expansion hook),
// the shared sentinel errors and edge-weight validation.
//
// No-path is a result, not an error: an unreachable goal yields
// Result{Found: false} with a nil error. Errors are reserved for malformed
// input (nil graph, unknown endpoints, bad weights or heuristic failures).
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

// Sentinel errors shared by the search packages.
var (
	// ErrNilGraph is returned if a nil graph is passed to a search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexNotFound is returned when start or goal is absent from the graph.
	ErrVertexNotFound = errors.New("search: vertex not found")

	// ErrNegativeWeight is returned when a negative edge weight is encountered.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrInvalidWeight is returned when the graph reports a NaN or infinite weight.
	ErrInvalidWeight = errors.New("search: edge weight is not finite")
)

// Result holds the outcome of one search call.
//
//   - Path:     start…goal inclusive; empty (non-nil) for start == goal; nil when not found.
//   - Cost:     total edge weight of Path (edge count for breadth-first search).
//   - Found:    false only when goal is unreachable from start.
//   - Expanded: number of node expansions performed (both directions for bidirectional).
type Result struct {
	Path     []string
	Cost     float64
	Found    bool
	Expanded int
}

// Trivial is the result of a same-node query: found, with an empty path.
// Callers conventionally treat start == goal as "no path to walk" rather
// than a single-node path.
func Trivial() Result {
	return Result{Path: []string{}, Found: true}
}

// Validate performs the input checks common to every search: non-nil graph
// and both endpoints present.
func Validate(g core.Explorer, start, goal string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}

	return nil
}

// Weight fetches the weight of u–v and rejects negative or non-finite values.
func Weight(g core.Explorer, u, v string) (float64, error) {
	w, err := g.EdgeWeight(u, v)
	if err != nil {
		return 0, fmt.Errorf("search: weight of %s-%s: %w", u, v, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %s-%s weight=%g", ErrInvalidWeight, u, v, w)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: %s-%s weight=%g", ErrNegativeWeight, u, v, w)
	}

	return w, nil
}

// PathCost sums the edge weights along path. Paths shorter than two nodes cost 0.
func PathCost(g core.Explorer, path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := Weight(g, path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
