// Package bidirectional implements meet-in-the-middle variants of
// uniform-cost search and A*: one search grows from start, another from
// goal, and the call ends once no unexplored vertex can improve the best
// connection found so far.
//
// Algorithm
//
//   - Each iteration pops one not-yet-expanded vertex from each frontier
//     and expands both (forward first).
//   - Meeting: whenever a vertex has a cost in both directions and
//     g_f(x) + g_b(x) < mu, the path start…x…goal becomes the best path and
//     mu is updated. The test runs for every expanded vertex and for every
//     neighbor scanned during relaxation, so a meeting across an edge is
//     never missed.
//   - Stop: after both expansions, if topF + topB >= mu (the two frontier
//     minima) no future expansion can beat mu and the best path is returned.
//     Stopping as soon as the frontiers intersect is not correct and is not
//     done here.
//   - If a frontier runs dry, that direction has settled everything it can
//     reach; the best path (if any) is optimal, otherwise the goal is
//     unreachable.
//
// A* potentials
//
// A plain f = g + h in both directions breaks the stopping bound. AStar
// therefore uses the average potential
//
//	p_f(v) = (h(v, goal) − h(v, start)) / 2,   p_b(v) = −p_f(v)
//
// which is consistent whenever h is, and keeps topF + topB >= mu exact:
// the forward key of a vertex plus its backward key equals g_f + g_b.
// Forward keys lean toward goal, backward keys toward start.
//
// Complexity
//
//   - Time:  O((V + E) log V) in the worst case; typically far fewer
//     expansions than a one-sided search on spatial graphs.
//   - Space: O(V + E) across both directions.
//
// Errors match the dijkstra package: search.ErrNilGraph,
// search.ErrVertexNotFound, search.ErrNegativeWeight,
// search.ErrInvalidWeight, search.ErrNeighbors and, for AStar,
// heuristic.ErrMissingPosition / heuristic.ErrBadEstimate.
package bidirectional
