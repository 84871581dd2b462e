package bfs

import (
	"time"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/search"
)

// Name identifies this algorithm in logs and metrics.
const Name = "bfs"

// queueItem pairs a vertex ID with its depth from start.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph    core.Explorer
	opts     search.Options
	goal     string
	queue    *linkedlistqueue.Queue
	seen     map[string]bool   // discovered: enqueued or already expanded
	parent   map[string]string // discovery tree; start has no entry
	expanded int
}

// Search finds a path from start to goal with the fewest edges, ignoring
// edge weights. Result.Cost is the number of edges of the returned path.
//
// start == goal returns an empty (non-nil) path without touching the graph
// beyond the nil check: a same-node query has no path to walk.
//
// An unreachable goal yields Result{Found: false} and a nil error.
// Errors: search.ErrNilGraph, search.ErrVertexNotFound, search.ErrNeighbors, or the
// context error when a search.WithContext context is canceled.
func Search(g core.Explorer, start, goal string, opts ...search.Option) (res search.Result, err error) {
	o := search.Resolve(opts...)
	defer func(started time.Time) { o.Finish(Name, started, res, err) }(time.Now())

	if g == nil {
		return search.Result{}, search.ErrNilGraph
	}
	if start == goal {
		return search.Trivial(), nil
	}
	if err = search.Validate(g, start, goal); err != nil {
		return search.Result{}, err
	}

	w := &walker{
		graph:  g,
		opts:   o,
		goal:   goal,
		queue:  linkedlistqueue.New(),
		seen:   map[string]bool{start: true},
		parent: make(map[string]string),
	}
	w.queue.Enqueue(queueItem{id: start})

	found, err := w.loop()
	res.Expanded = w.expanded
	if err != nil || !found {
		return res, err
	}
	res.Path = search.Trace(w.parent, goal)
	res.Cost = float64(len(res.Path) - 1)
	res.Found = true

	return res, nil
}

// loop processes the queue level by level until goal is generated,
// the queue runs dry, or the context is canceled.
func (w *walker) loop() (bool, error) {
	for !w.queue.Empty() {
		if err := w.opts.Canceled(); err != nil {
			return false, err
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		w.expanded++
		w.opts.OnExpand(item.id, float64(item.depth))

		found, err := w.enqueueNeighbors(item)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// enqueueNeighbors discovers the unseen neighbors of item in ascending ID
// order. Reports true as soon as goal is discovered: every later discovery
// lies at the same or a greater depth.
func (w *walker) enqueueNeighbors(item queueItem) (bool, error) {
	nbrs, err := search.Neighbors(w.graph, item.id)
	if err != nil {
		return false, err
	}
	for _, nbr := range nbrs {
		if w.seen[nbr] {
			continue
		}
		w.seen[nbr] = true
		w.parent[nbr] = item.id
		if nbr == w.goal {
			return true, nil
		}
		w.queue.Enqueue(queueItem{id: nbr, depth: item.depth + 1})
	}

	return false, nil
}
