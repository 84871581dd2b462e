package bidirectional

import (
	"math"
	"time"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/frontier"
	"github.com/katalvlaran/pathsearch/heuristic"
	"github.com/katalvlaran/pathsearch/search"
)

// Algorithm names reported to loggers and collectors.
const (
	NameUniformCost = "bidirectional-ucs"
	NameAStar       = "bidirectional-astar"
)

// UniformCost runs uniform-cost search from start and from goal in
// lockstep and stops once the two frontier minima together reach the cost
// of the best meeting found so far.
//
// start == goal returns an empty path. An unreachable goal yields
// Result{Found: false} and a nil error. Result.Expanded counts expansions
// in both directions.
func UniformCost(g core.Explorer, start, goal string, opts ...search.Option) (search.Result, error) {
	return run(NameUniformCost, g, start, goal, nil, opts)
}

// AStar is UniformCost with heuristic guidance in both directions; a nil h
// selects heuristic.Euclidean. Each direction is ordered by g plus the
// average potential
//
//	p_f(v) = (h(v, goal) − h(v, start)) / 2,   p_b(v) = −p_f(v)
//
// so the forward search leans toward goal and the backward search toward
// start while the stopping bound stays exact. h must be consistent and
// symmetric; heuristic.Null reduces AStar to UniformCost.
func AStar(g core.Explorer, start, goal string, h heuristic.Func, opts ...search.Option) (search.Result, error) {
	if h == nil {
		h = heuristic.Euclidean
	}

	return run(NameAStar, g, start, goal, h, opts)
}

// run validates input, drives the lockstep loop and reports the outcome.
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

	s := newState(g, start, goal, h, o)
	if err = s.seed(); err != nil {
		return search.Result{}, err
	}
	err = s.loop()
	res.Expanded = s.expanded
	if err != nil || s.best == nil {
		return res, err
	}
	res.Path = s.best
	res.Cost = s.mu
	res.Found = true

	return res, nil
}

// state holds both directions and the best meeting of one call.
type state struct {
	g     core.Explorer
	opts  search.Options
	h     heuristic.Func
	start string
	goal  string

	hGoal  map[string]float64 // cached h(v, goal)
	hStart map[string]float64 // cached h(v, start)

	fwd *direction
	bwd *direction

	mu       float64  // cost of best; +Inf until the directions meet
	best     []string // materialized when mu improves
	expanded int
}

// direction is one half of the search: forward from start, or backward from goal.
type direction struct {
	root    string
	sign    float64            // +1 forward, −1 backward: p(v) = sign·(h(v,goal) − h(v,start))/2
	dist    map[string]float64 // best-known cost from root
	prev    map[string]string  // predecessor toward root
	visited map[string]bool
	pq      *frontier.Frontier
	other   *direction
}

func newState(g core.Explorer, start, goal string, h heuristic.Func, o search.Options) *state {
	s := &state{
		g:      g,
		opts:   o,
		h:      h,
		start:  start,
		goal:   goal,
		hGoal:  make(map[string]float64),
		hStart: make(map[string]float64),
		fwd:    newDirection(start, 1),
		bwd:    newDirection(goal, -1),
		mu:     math.Inf(1),
	}
	s.fwd.other, s.bwd.other = s.bwd, s.fwd

	return s
}

func newDirection(root string, sign float64) *direction {
	return &direction{
		root:    root,
		sign:    sign,
		dist:    map[string]float64{root: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
		pq:      frontier.New(),
	}
}

// potential returns p(v) for direction d; always 0 without a heuristic.
func (s *state) potential(d *direction, v string) (float64, error) {
	if s.h == nil {
		return 0, nil
	}
	toGoal, err := s.estimate(s.hGoal, v, s.goal)
	if err != nil {
		return 0, err
	}
	toStart, err := s.estimate(s.hStart, v, s.start)
	if err != nil {
		return 0, err
	}

	return d.sign * (toGoal - toStart) / 2, nil
}

func (s *state) estimate(cache map[string]float64, v, target string) (float64, error) {
	if est, ok := cache[v]; ok {
		return est, nil
	}
	est, err := heuristic.Estimate(s.h, s.g, v, target)
	if err != nil {
		return 0, err
	}
	cache[v] = est

	return est, nil
}

// seed pushes each root onto its own frontier.
func (s *state) seed() error {
	for _, d := range []*direction{s.fwd, s.bwd} {
		p, err := s.potential(d, d.root)
		if err != nil {
			return err
		}
		d.pq.Push(p, frontier.Item{Node: d.root, Cost: 0})
	}

	return nil
}

// loop advances both directions one expansion at a time until the stopping
// bound is met or a frontier runs dry. An exhausted direction has final
// costs for everything it can reach, so best is optimal in either case.
func (s *state) loop() error {
	for {
		if err := s.opts.Canceled(); err != nil {
			return err
		}

		u, ok, err := s.fwd.popFresh()
		if err != nil || !ok {
			return err
		}
		v, ok, err := s.bwd.popFresh()
		if err != nil || !ok {
			return err
		}

		if err = s.expand(s.fwd, u); err != nil {
			return err
		}
		if err = s.expand(s.bwd, v); err != nil {
			return err
		}

		topF, okF := s.fwd.pq.PeekMin()
		topB, okB := s.bwd.pq.PeekMin()
		if !okF || !okB {
			continue // next popFresh reports exhaustion
		}
		// Stale entries only lower the minima, which delays the stop.
		if topF+topB >= s.mu {
			return nil
		}
	}
}

// popFresh pops entries until one names a vertex d has not expanded yet.
func (d *direction) popFresh() (string, bool, error) {
	for d.pq.Size() > 0 {
		item, err := d.pq.Pop()
		if err != nil {
			return "", false, err
		}
		if !d.visited[item.Node] {
			return item.Node, true, nil
		}
	}

	return "", false, nil
}

// expand marks u explored in d, tests it as a meeting point and relaxes its edges.
func (s *state) expand(d *direction, u string) error {
	d.visited[u] = true
	s.expanded++
	s.opts.OnExpand(u, d.dist[u])
	s.meet(u)

	nbrs, err := search.Neighbors(s.g, u)
	if err != nil {
		return err
	}
	for _, v := range nbrs {
		if d.visited[v] {
			continue
		}
		w, err := search.Weight(s.g, u, v)
		if err != nil {
			return err
		}

		newDist := d.dist[u] + w
		if old, seen := d.dist[v]; !seen || newDist < old {
			p, err := s.potential(d, v)
			if err != nil {
				return err
			}
			d.dist[v] = newDist
			d.prev[v] = u
			d.pq.Push(newDist+p, frontier.Item{Node: v, Cost: newDist})
		}
		s.meet(v)
	}

	return nil
}

// meet records x as the new best meeting point when both directions have
// reached it and their combined cost beats mu.
func (s *state) meet(x string) {
	gf, okF := s.fwd.dist[x]
	gb, okB := s.bwd.dist[x]
	if !okF || !okB || gf+gb >= s.mu {
		return
	}
	s.mu = gf + gb
	s.best = s.stitch(x)
	s.opts.Logger.DebugContext(s.opts.Ctx, "directions met",
		"node", x,
		"mu", s.mu,
	)
}

// stitch joins start…x with x…goal. With zero-weight edges the two halves
// may share vertices; the loop between repeats costs nothing and is cut.
func (s *state) stitch(x string) []string {
	head := search.Trace(s.fwd.prev, x)
	tail := search.Trace(s.bwd.prev, x)
	search.Reverse(tail)

	path := make([]string, 0, len(head)+len(tail)-1)
	pos := make(map[string]int, cap(path))
	for _, v := range append(head, tail[1:]...) {
		if i, dup := pos[v]; dup {
			for _, cut := range path[i+1:] {
				delete(pos, cut)
			}
			path = path[:i+1]
			continue
		}
		pos[v] = len(path)
		path = append(path, v)
	}

	return path
}
