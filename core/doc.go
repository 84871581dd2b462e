// Package core provides the thread-safe in-memory Graph used by the
// pathsearch algorithms, with a minimal, composable API surface.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Edge weights are float64 and must be non-negative and finite (ErrBadWeight).
//   - Self-loops are rejected unless the graph is built WithLoops().
//   - At most one edge joins two vertices (ErrMultiEdgeNotAllowed).
//   - Vertices may carry a 2D Point (SetPosition/Position) for geometric heuristics.
//   - Constant-time adjacency via nested maps: adjacency[u][v] = edgeID.
//   - Monotonic Edge.ID generation ("e1", "e2", …).
//
// Deterministic iteration: Vertices(), Edges(), NeighborIDs() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                      // O(1)
//	HasVertex(id string) bool                       // O(1)
//	RemoveVertex(id string) error                   // O(deg(v))
//	SetPosition(id string, p Point) error           // O(1)
//	Position(id string) (Point, error)              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                 // O(1)
//	HasEdge(from, to string) bool                   // O(1)
//	EdgeWeight(from, to string) (float64, error)    // O(1), symmetric
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)           // O(d·log d)
//	NeighborIDs(id string) ([]string, error)        // O(d·log d), unique, sorted
//	Vertices() []string                             // O(V·log V)
//	Edges() []*Edge                                 // O(E·log E)
//
// Searches do not depend on *Graph directly; they accept the Explorer
// interface (and probe for Locator when a heuristic needs positions), so any
// graph type honoring that contract can be searched.
package core
