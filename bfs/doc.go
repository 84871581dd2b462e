// Package bfs provides goal-directed breadth-first search over any
// core.Explorer, returning a path with the minimum number of edges.
//
// What
//
//   - Explores vertices level by level from start using a FIFO frontier
//     (gods linkedlistqueue); edge weights are ignored.
//   - Neighbors are discovered in ascending ID order, so among equal-length
//     paths the result is reproducible: on the cycle A-B-C-D-A the query
//     A→C always yields [A B C].
//   - The goal test happens when a vertex is discovered, which is safe for
//     unit costs and saves one full level of expansion.
//   - Each vertex is enqueued and expanded at most once (discovered set); parent links
//     play the role of the recorded path-from-start.
//
// Contract
//
//   - start == goal returns Result{Path: []string{}, Found: true}: a
//     same-node query has no path to walk. This is deliberate and shared by
//     every search in the module.
//   - An unreachable goal is a normal result (Found == false, nil error).
//   - Result.Cost counts edges; Result.Expanded counts dequeued vertices.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbors are copied and sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(g, "A", "C",
//	    search.WithLogger(logger),
//	    search.WithOnExpand(func(id string, depth float64) { /* ... */ }),
//	)
//	if err != nil {
//	    // search.ErrNilGraph, search.ErrVertexNotFound, search.ErrNeighbors, ctx errors
//	}
//	if !res.Found {
//	    // unreachable
//	}
//
// Errors
//
//   - search.ErrNilGraph        if g is nil.
//   - search.ErrVertexNotFound  if start or goal is absent.
//   - search.ErrNeighbors       if the graph fails to enumerate neighbors.
//   - ctx.Err()                 if a search.WithContext context is canceled.
package bfs
