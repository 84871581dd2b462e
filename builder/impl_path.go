// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex i gets ID cfg.idFn(i) and position (i, 0).
//   • Emits edges i – i+1 for i=0..n-2 in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			p := core.Point{X: float64(i)}
			if err := addVertex(g, methodPath, cfg.idFn(i), &p); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
