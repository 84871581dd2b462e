package gridgraph

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// ConnectedComponents labels the land regions ("islands") of the grid under
// gg.Conn. Each component is a list of row-major cell indices in BFS order;
// components appear in row-major order of their first cell.
// Complexity: O(W×H×d) time, Memory: O(W×H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.IsLand(x, y) || seen[i0] {
				continue
			}
			comps = append(comps, gg.flood(i0, seen))
		}
	}

	return comps
}

// flood collects the component containing i0, marking it in seen.
func (gg *GridGraph) flood(i0 int, seen []bool) []int {
	queue := linkedlistqueue.New()
	queue.Enqueue(i0)
	seen[i0] = true

	var comp []int
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		u := v.(int)
		comp = append(comp, u)
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsLand(vx, vy) {
				continue
			}
			if vi := gg.index(vx, vy); !seen[vi] {
				seen[vi] = true
				queue.Enqueue(vi)
			}
		}
	}

	return comp
}

// Connected reports whether land cells a and b lie in the same component.
// Water or out-of-bounds cells are never connected. Searches on
// ToCoreGraph output can use it to skip queries that cannot succeed.
func (gg *GridGraph) Connected(ax, ay, bx, by int) bool {
	if !gg.IsLand(ax, ay) || !gg.IsLand(bx, by) {
		return false
	}
	seen := make([]bool, gg.Width*gg.Height)
	target := gg.index(bx, by)
	for _, i := range gg.flood(gg.index(ax, ay), seen) {
		if i == target {
			return true
		}
	}

	return false
}
