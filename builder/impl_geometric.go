// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_geometric.go — implementation of RandomGeometric(n, radius).
//
// Model:
//   • n points drawn uniformly in the unit square [0,1)², in index order
//     (x then y per point).
//   • Every pair i<j at Euclidean distance d ≤ radius is connected, in
//     lexicographic (i, j) order, with weight d·(1+u), u ~ U[0,1).
//     Weights never undercut the straight-line length, so Euclidean
//     distance is a consistent heuristic on these graphs.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • radius > 0 and finite (else ErrInvalidRadius).
//   • cfg.rng != nil (else ErrNeedRandSource).
//   • cfg.weightFn is not used.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricNodes     = 1
)

// RandomGeometric returns a Constructor that builds a random geometric
// graph with positions. The graph may be disconnected for small radii.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minGeometricNodes, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pts := make([]core.Point, n)
		for i := range pts {
			pts[i] = core.Point{X: cfg.rng.Float64(), Y: cfg.rng.Float64()}
			if err := addVertex(g, methodRandomGeometric, cfg.idFn(i), &pts[i]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
				if d > radius {
					continue
				}
				w := d * (1 + cfg.rng.Float64())
				if err := addEdge(g, methodRandomGeometric, cfg.idFn(i), cfg.idFn(j), w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
