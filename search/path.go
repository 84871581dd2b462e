package search

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathsearch/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("search: neighbor iteration error")

// Neighbors returns a sorted copy of the neighbors of id. Searches iterate
// it in order so that frontier insertion order, and with it tie-breaking,
// does not depend on the Explorer implementation.
func Neighbors(g core.Explorer, id string) ([]string, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get neighbors of %q: %w", ErrNeighbors, id, err)
	}
	out := append([]string(nil), nbrs...)
	sort.Strings(out)

	return out, nil
}

// Trace follows parent links back from v to the root (the vertex without
// a parent) and returns the root…v path.
func Trace(parent map[string]string, v string) []string {
	path := []string{}
	for cur := v; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	Reverse(path)

	return path
}

// Reverse reverses path in place.
func Reverse(path []string) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
