// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Edge IDs are monotonic ("e" + decimal) and never reused.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge between from and to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Under the write lock ensure both endpoints exist.
//  3. Reject a second edge between the same endpoints.
//  4. Store the edge and mirror it in adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s-%s weight=%g", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, exists := g.adjacency[from][to]; exists {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))

	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: unknown edge ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether from and to are adjacent. Symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeWeight returns the weight of the edge between from and to.
// weight(u,v) == weight(v,u) for every edge.
//
// Errors:
//   - ErrVertexNotFound: either endpoint is unknown.
//   - ErrEdgeNotFound: the endpoints are not adjacent.
//
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = g.vertices[to]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	eid, ok := nbrs[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, from, to)
	}

	return g.edges[eid].Weight, nil
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge once, sorted by Edge.ID ascending.
// Treat the returned *Edge values as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
