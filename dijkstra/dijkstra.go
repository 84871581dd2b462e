package dijkstra

import (
	"time"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/frontier"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

// Algorithm names reported to loggers and collectors.
const (
	NameUniformCost = "ucs"
	NameAStar       = "astar"
)

// UniformCost returns a minimum-cost path from start to goal (Dijkstra's
// algorithm with early exit on goal). The frontier is ordered by the
// accumulated cost g(n).
//
// Validation (in order):
//  1. g must be non-nil (search.ErrNilGraph).
//  2. start == goal returns an empty path immediately.
//  3. start and goal must exist (search.ErrVertexNotFound).
//
// Weights are checked lazily as edges are relaxed: a negative weight yields
// search.ErrNegativeWeight, NaN or ±Inf yields search.ErrInvalidWeight.
// An unreachable goal yields Result{Found: false} and a nil error.
func UniformCost(g core.Explorer, start, goal string, opts ...search.Option) (search.Result, error) {
	return run(NameUniformCost, g, start, goal, nil, opts)
}

// AStar returns a path from start to goal ordering the frontier by
// f(n) = g(n) + h(n, goal). A nil h selects heuristic.Euclidean.
// With heuristic.Null it explores exactly like UniformCost.
//
// The returned path is optimal when h is consistent. Geometric heuristics
// fail with heuristic.ErrMissingPosition on vertices without positions;
// estimates that are negative or not finite fail with heuristic.ErrBadEstimate.
func AStar(g core.Explorer, start, goal string, h heuristic.Func, opts ...search.Option) (search.Result, error) {
	if h == nil {
		h = heuristic.Euclidean
	}

	return run(NameAStar, g, start, goal, h, opts)
}

// run validates input, drives the runner and reports the outcome.
func run(name string, g core.Explorer, start, goal string, h heuristic.Func, opts []search.Option) (res search.Result, err error) {
	o := search.Resolve(opts...)
	defer func(started time.Time) { o.Finish(name, started, res, err) }(time.Now())

	if g == nil {
		return search.Result{}, search.ErrNilGraph
	}
	if start == goal {
		return search.Trivial(), nil
	}
	if err = search.Validate(g, start, goal); err != nil {
		return search.Result{}, err
	}

	r := &runner{
		g:        g,
		opts:     o,
		goal:     goal,
		h:        h,
		estimate: make(map[string]float64),
		dist:     make(map[string]float64),
		prev:     make(map[string]string),
		visited:  make(map[string]bool),
		pq:       frontier.New(),
	}
	if err = r.init(start); err != nil {
		return search.Result{}, err
	}

	found, err := r.process()
	res.Expanded = r.expanded
	if err != nil || !found {
		return res, err
	}
	res.Path = search.Trace(r.prev, goal)
	res.Cost = r.dist[goal]
	res.Found = true

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        core.Explorer
	opts     search.Options
	goal     string
	h        heuristic.Func     // nil for uniform-cost
	estimate map[string]float64 // cached h(v, goal)
	dist     map[string]float64 // best-known g(v)
	prev     map[string]string  // predecessor on the best-known path
	visited  map[string]bool    // expanded vertices
	pq       *frontier.Frontier // lazy decrease-key: stale entries are skipped on pop
	expanded int
}

// priority returns the frontier key for v reached at cost g.
func (r *runner) priority(v string, g float64) (float64, error) {
	if r.h == nil {
		return g, nil
	}
	est, ok := r.estimate[v]
	if !ok {
		var err error
		if est, err = heuristic.Estimate(r.h, r.g, v, r.goal); err != nil {
			return 0, err
		}
		r.estimate[v] = est
	}

	return g + est, nil
}

// init seeds the frontier with start at cost 0.
func (r *runner) init(start string) error {
	p, err := r.priority(start, 0)
	if err != nil {
		return err
	}
	r.dist[start] = 0
	r.pq.Push(p, frontier.Item{Node: start, Cost: 0})

	return nil
}

// process repeatedly pops the minimum-priority vertex and relaxes its edges.
// Returns true once goal is popped; its recorded path is then final.
func (r *runner) process() (bool, error) {
	for r.pq.Size() > 0 {
		if err := r.opts.Canceled(); err != nil {
			return false, err
		}

		item, err := r.pq.Pop()
		if err != nil {
			return false, err
		}
		u := item.Node

		// Stale entry for an already finalized vertex.
		if r.visited[u] {
			continue
		}
		if u == r.goal {
			return true, nil
		}

		r.visited[u] = true
		r.expanded++
		r.opts.OnExpand(u, r.dist[u])

		if err = r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve every unexplored neighbor of u through u.
// Only a strict improvement updates dist/prev and pushes a new entry.
func (r *runner) relax(u string) error {
	nbrs, err := search.Neighbors(r.g, u)
	if err != nil {
		return err
	}

	for _, v := range nbrs {
		if r.visited[v] {
			continue
		}
		w, err := search.Weight(r.g, u, v)
		if err != nil {
			return err
		}

		newDist := r.dist[u] + w
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}
		p, err := r.priority(v, newDist)
		if err != nil {
			return err
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.Push(p, frontier.Item{Node: v, Cost: newDist})
	}

	return nil
}
