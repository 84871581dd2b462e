// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center" at the origin.
//   - Adds leaves via cfg.idFn for i = 1..n-1 on the unit circle.
//   - Emits spokes Center – leaf[i] by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertex(g, methodStar, CenterVertexID, &core.Point{}); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			p := onCircle(i-1, n-1, 1)
			if err := addVertex(g, methodStar, leaf, &p); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, CenterVertexID, leaf, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
