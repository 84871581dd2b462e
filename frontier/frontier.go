// Package frontier provides the insertion-ordered min-priority container used
// as the open set of every priority-driven search.
//
// Entries are ordered by the composite key (priority, sequence): the sequence
// number grows by one on every Push, so among equal priorities the entry
// pushed first is popped first. This makes path choices among cost ties
// reproducible regardless of the underlying heap.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - PeekMin, Top, Contains, Size: O(1)
//   - Items: O(n log n)
package frontier

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// ErrEmptyQueue is returned when popping from an empty Frontier. Search
// loops check Size before popping, so seeing it signals a logic error.
var ErrEmptyQueue = errors.New("frontier: pop from empty queue")

// Item is the payload stored in the frontier: a node and the accumulated
// path cost with which it was reached.
type Item struct {
	Node string
	Cost float64
}

// entry is the (priority, sequence, payload) tuple kept in the heap.
type entry struct {
	priority float64
	seq      uint64
	item     Item
}

// byPrioritySeq orders entries by priority, then by insertion sequence.
func byPrioritySeq(a, b interface{}) int {
	ea, eb := a.(*entry), b.(*entry)
	switch {
	case ea.priority < eb.priority:
		return -1
	case ea.priority > eb.priority:
		return 1
	case ea.seq < eb.seq:
		return -1
	case ea.seq > eb.seq:
		return 1
	default:
		return 0
	}
}

// Frontier is a min-priority queue with FIFO tie-breaking.
// It is not safe for concurrent use; each search owns its own Frontier.
type Frontier struct {
	pq    *priorityqueue.Queue
	seq   uint64         // next sequence number
	count map[string]int // node → number of queued entries
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{
		pq:    priorityqueue.NewWith(byPrioritySeq),
		count: make(map[string]int),
	}
}

// Push inserts item with the given priority and assigns it the next sequence number.
func (f *Frontier) Push(priority float64, item Item) {
	f.pq.Enqueue(&entry{priority: priority, seq: f.seq, item: item})
	f.seq++
	f.count[item.Node]++
}

// Pop removes and returns the item with the smallest priority, earliest
// insertion first among ties. Returns ErrEmptyQueue when empty.
func (f *Frontier) Pop() (Item, error) {
	_, item, err := f.PopEntry()

	return item, err
}

// PopEntry is Pop that also reports the priority the item was queued with.
func (f *Frontier) PopEntry() (float64, Item, error) {
	v, ok := f.pq.Dequeue()
	if !ok {
		return 0, Item{}, ErrEmptyQueue
	}
	e := v.(*entry)
	if f.count[e.item.Node]--; f.count[e.item.Node] == 0 {
		delete(f.count, e.item.Node)
	}

	return e.priority, e.item, nil
}

// PeekMin returns the smallest queued priority without removing it.
// The boolean is false when the frontier is empty; there is no minimum then.
func (f *Frontier) PeekMin() (float64, bool) {
	v, ok := f.pq.Peek()
	if !ok {
		return 0, false
	}

	return v.(*entry).priority, true
}

// Top is the sentinel form of PeekMin: it returns 0 for an empty frontier.
// A zero from an empty frontier is not a real cost; check Size first.
func (f *Frontier) Top() float64 {
	p, _ := f.PeekMin()

	return p
}

// Contains reports whether an entry for node is queued, regardless of its
// priority or sequence number.
func (f *Frontier) Contains(node string) bool {
	return f.count[node] > 0
}

// Size returns the number of queued entries, stale duplicates included.
func (f *Frontier) Size() int {
	return f.pq.Size()
}

// Clear empties the frontier and resets the sequence counter.
func (f *Frontier) Clear() {
	f.pq.Clear()
	f.seq = 0
	f.count = make(map[string]int)
}

// Items returns a snapshot of the queued items in pop order.
// The frontier is not modified.
func (f *Frontier) Items() []Item {
	entries := f.sorted()
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}

	return items
}

// String renders the frontier as "PQ:[(p,node) ...]" in pop order.
func (f *Frontier) String() string {
	entries := f.sorted()

	var sb strings.Builder
	sb.WriteString("PQ:[")
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%g,%s)", e.priority, e.item.Node)
	}
	sb.WriteByte(']')

	return sb.String()
}

// sorted copies the heap contents into pop order.
func (f *Frontier) sorted() []*entry {
	values := f.pq.Values()
	entries := make([]*entry, 0, len(values))
	for _, v := range values {
		entries = append(entries, v.(*entry))
	}
	sort.Slice(entries, func(i, j int) bool { return byPrioritySeq(entries[i], entries[j]) < 0 })

	return entries
}
