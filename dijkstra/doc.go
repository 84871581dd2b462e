// Package dijkstra provides the weighted forward searches: uniform-cost
// search (Dijkstra's algorithm with early exit) and A*.
//
// Overview:
//
//   - Both algorithms share one runner and one relaxation loop; they differ
//     only in the priority function:
//     UniformCost orders the frontier by g(n),
//     AStar orders it by g(n) + h(n, goal).
//   - The loop pops the minimum-priority vertex; if it is the goal its
//     recorded path is returned at once. Otherwise the vertex is marked
//     explored and every unexplored neighbor whose cost strictly improves
//     gets a new cost, a new predecessor and a new frontier entry.
//   - “Lazy decrease-key”: a vertex may sit in the frontier several times
//     with stale priorities; entries for explored vertices are skipped.
//   - Ties are resolved by the frontier's insertion sequence and neighbors
//     are relaxed in ascending ID order, so results are reproducible.
//
// Heuristics:
//
//   - AStar takes a heuristic.Func; nil selects heuristic.Euclidean.
//   - heuristic.Null turns AStar into UniformCost.
//   - For the early exit to return an optimal path the heuristic must be
//     admissible; because explored vertices are never reopened it must also
//     be consistent (h(u) <= w(u,v) + h(v)). Euclidean distance over vertex
//     positions is consistent whenever every edge weight is at least the
//     straight-line length of the edge.
//   - h(v, goal) is evaluated at most once per vertex per call.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (up to E entries in the frontier)
//
// Errors:
//
//   - search.ErrNilGraph:       g is nil.
//   - search.ErrVertexNotFound: start or goal is absent.
//   - search.ErrNegativeWeight: a relaxed edge has a negative weight.
//   - search.ErrInvalidWeight:  a relaxed edge has a NaN or infinite weight.
//   - search.ErrNeighbors:      the graph failed to enumerate neighbors.
//   - heuristic.ErrMissingPosition, heuristic.ErrBadEstimate (AStar).
//
// Weights are validated lazily, only for edges the search actually relaxes.
// Unreachable goals are not errors: Result.Found is false.
//
// Example:
//
//	res, err := dijkstra.UniformCost(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Path, res.Cost)
//	}
//
//	res, err = dijkstra.AStar(g, "A", "C", heuristic.Euclidean,
//	    search.WithLogger(logger))
package dijkstra
