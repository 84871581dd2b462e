package core

// Explorer is the read-only view of a graph consumed by every search.
//
// Contract:
//   - NeighborIDs returns unique adjacent IDs in a deterministic order;
//     *Graph returns them sorted ascending.
//   - EdgeWeight is defined for every pair returned by NeighborIDs and is
//     symmetric: EdgeWeight(u,v) == EdgeWeight(v,u).
//   - The graph does not change while a search runs.
type Explorer interface {
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
	EdgeWeight(from, to string) (float64, error)
}

// Locator exposes optional per-vertex 2D positions used by geometric heuristics.
type Locator interface {
	Position(id string) (Point, error)
}

// Compile-time checks.
var (
	_ Explorer = (*Graph)(nil)
	_ Locator  = (*Graph)(nil)
)
