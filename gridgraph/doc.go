// Package gridgraph turns 2D land/water maps into positioned core.Graph
// values for the search packages.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     LandThreshold are land (walkable), the rest are water (obstacles).
//   - ParseRows reads the same map from text rows ('#' water, '.' land).
//   - ToCoreGraph emits one vertex per land cell, ID "x,y", positioned at
//     (x,y). Orthogonal steps cost 1; Conn8 diagonal steps cost √2.
//   - ConnectedComponents / Connected label the land islands.
//
// Heuristics:
//
//   - heuristic.Euclidean is consistent under Conn4 and Conn8.
//   - heuristic.Manhattan is consistent under Conn4 only.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ParseRows met an unknown character.
//   - ErrOutOfBounds: CellID coordinates outside the grid.
package gridgraph
