// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1), placed on
//     a regular n-gon whose sides have length 1.
//   • Emits edges in stable order i – (i+1)%n for i=0..n-1.
//   • Weight: cfg.weightFn(cfg.rng) per edge.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn, edge order by increasing i.
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// With the default unit weights Euclidean distance over the positions is
// a consistent heuristic.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		// circumradius of a regular n-gon with unit sides
		radius := 1 / (2 * math.Sin(math.Pi/float64(n)))
		for i := 0; i < n; i++ {
			p := onCircle(i, n, radius)
			if err := addVertex(g, methodCycle, cfg.idFn(i), &p); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
