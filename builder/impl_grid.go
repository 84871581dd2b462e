// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is not
//     consulted so coordinates stay explicit. Cell (r,c) sits at X=c, Y=r.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emits Right (r,c+1) then Bottom
//     (r+1,c) where they exist.
//   • Weight: cfg.weightFn(cfg.rng) per edge. With weights ≥ 1 both
//     Euclidean and Manhattan distance are consistent heuristics.
//
// Complexity: O(rows*cols) vertices and edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex ID of cell (r, c) in a Grid fixture.
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := core.Point{X: float64(c), Y: float64(r)}
				if err := addVertex(g, methodGrid, GridID(r, c), &p); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, GridID(r, c+1), cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, GridID(r+1, c), cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
