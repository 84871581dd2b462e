package pathsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/bidirectional"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for names and
// values outside the Algorithm set.
var ErrUnknownAlgorithm = errors.New("pathsearch: unknown algorithm")

// Algorithm selects one of the five searches for Run.
type Algorithm int

const (
	BFS Algorithm = iota
	UCS
	AStarSearch
	BidiUCS
	BidiAStar
)

// String returns the name used in logs and metrics ("bfs", "ucs", ...).
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return bfs.Name
	case UCS:
		return dijkstra.NameUniformCost
	case AStarSearch:
		return dijkstra.NameAStar
	case BidiUCS:
		return bidirectional.NameUniformCost
	case BidiAStar:
		return bidirectional.NameAStar
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Heuristic reports whether a uses a heuristic function.
func (a Algorithm) Heuristic() bool {
	return a == AStarSearch || a == BidiAStar
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, UCS, AStarSearch, BidiUCS, BidiAStar}
}

// ParseAlgorithm maps a name to its Algorithm. It accepts the String forms
// case-insensitively plus "dijkstra" for UCS.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "dijkstra" {
		return UCS, nil
	}
	for _, a := range Algorithms() {
		if a.String() == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// BreadthFirstSearch returns a path with the fewest edges; weights are ignored.
func BreadthFirstSearch(g core.Explorer, start, goal string, opts ...search.Option) (search.Result, error) {
	return bfs.Search(g, start, goal, opts...)
}

// UniformCostSearch returns a minimum-weight path.
func UniformCostSearch(g core.Explorer, start, goal string, opts ...search.Option) (search.Result, error) {
	return dijkstra.UniformCost(g, start, goal, opts...)
}

// AStar returns a minimum-weight path using h to guide the search; a nil h
// selects heuristic.Euclidean. The result is optimal when h is consistent.
func AStar(g core.Explorer, start, goal string, h heuristic.Func, opts ...search.Option) (search.Result, error) {
	return dijkstra.AStar(g, start, goal, h, opts...)
}

// BidirectionalUCS returns a minimum-weight path found by searching from
// both endpoints.
func BidirectionalUCS(g core.Explorer, start, goal string, opts ...search.Option) (search.Result, error) {
	return bidirectional.UniformCost(g, start, goal, opts...)
}

// BidirectionalAStar is BidirectionalUCS guided by h; a nil h selects
// heuristic.Euclidean. h must be consistent and symmetric.
func BidirectionalAStar(g core.Explorer, start, goal string, h heuristic.Func, opts ...search.Option) (search.Result, error) {
	return bidirectional.AStar(g, start, goal, h, opts...)
}

// Run dispatches to the search named by alg. h is ignored by algorithms
// without a heuristic.
func Run(alg Algorithm, g core.Explorer, start, goal string, h heuristic.Func, opts ...search.Option) (search.Result, error) {
	switch alg {
	case BFS:
		return BreadthFirstSearch(g, start, goal, opts...)
	case UCS:
		return UniformCostSearch(g, start, goal, opts...)
	case AStarSearch:
		return AStar(g, start, goal, h, opts...)
	case BidiUCS:
		return BidirectionalUCS(g, start, goal, opts...)
	case BidiAStar:
		return BidirectionalAStar(g, start, goal, h, opts...)
	}

	return search.Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
