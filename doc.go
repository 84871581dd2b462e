// Package pathsearch finds single-pair shortest paths in undirected graphs.
//
// Five searches share one contract and one result type:
//
//	BreadthFirstSearch   fewest edges, weights ignored
//	UniformCostSearch    minimum total weight (Dijkstra with early exit)
//	AStar                UniformCostSearch guided by a heuristic
//	BidirectionalUCS     uniform-cost search from both ends, meeting in the middle
//	BidirectionalAStar   the same with average-potential heuristic keys
//
// Every search returns a search.Result: the path start…goal inclusive, its
// cost, whether the goal was reached, and how many vertices were expanded.
// An unreachable goal is Found == false with a nil error. A query with
// start == goal is answered with an empty path and Found == true.
//
// Under the hood, everything is organized under subpackages:
//
//	core/          — Graph, Vertex, Edge, positions; Explorer/Locator views
//	frontier/      — min-priority frontier with FIFO tie-breaking
//	heuristic/     — Null, Euclidean, Manhattan, Scaled
//	search/        — Result, Options (context, logger, collector, hook), shared errors
//	bfs/           — breadth-first search
//	dijkstra/      — uniform-cost search and A*
//	bidirectional/ — bidirectional uniform-cost search and A*
//	builder/       — deterministic fixture graphs
//	gridgraph/     — land/water maps as positioned graphs
//	metrics/       — Prometheus search.Collector
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    5   1
//	    │   │
//	    └───C
//
//	UniformCostSearch(g, "A", "C") → [A B C], cost 2.
//
// The cmd/pathsearch binary runs one query described by a TOML file.
package pathsearch
