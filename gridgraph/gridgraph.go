package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

// Map characters understood by ParseRows.
const (
	WaterRune = '#'
	LandRune  = '.'
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// N first, clockwise
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ParseRows builds a GridGraph from a text map, one string per row:
// '#' is water (0), '.' is land (1) and a digit is taken as the cell value.
//
//	gg, err := gridgraph.ParseRows([]string{
//	    "..#.",
//	    "...#",
//	}, gridgraph.DefaultGridOptions())
func ParseRows(rows []string, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			switch {
			case r == WaterRune:
				values[y] = append(values[y], 0)
			case r == LandRune:
				values[y] = append(values[y], 1)
			case r >= '0' && r <= '9':
				values[y] = append(values[y], int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
		}
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and walkable.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed (dx,dy) offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexID formats the vertex identifier of cell (x,y) in ToCoreGraph output.
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// CellID is VertexID with bounds checking.
func (gg *GridGraph) CellID(x, y int) (string, error) {
	if !gg.InBounds(x, y) {
		return "", fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	return VertexID(x, y), nil
}

// ToCoreGraph converts the land cells into an undirected *core.Graph.
// Each land cell (x,y) becomes vertex VertexID(x,y) positioned at (x,y).
// Orthogonal neighbors are joined with weight 1 and, under Conn8, diagonal
// neighbors with weight √2, so Euclidean distance is a consistent heuristic.
// Water cells produce no vertices.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			if err := g.SetPosition(VertexID(x, y), core.Point{X: float64(x), Y: float64(y)}); err != nil {
				return nil, fmt.Errorf("gridgraph: ToCoreGraph: %w", err)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			u := VertexID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				v := VertexID(nx, ny)
				if g.HasEdge(u, v) {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = math.Sqrt2
				}
				if _, err := g.AddEdge(u, v, w); err != nil {
					return nil, fmt.Errorf("gridgraph: ToCoreGraph: %w", err)
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
