// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// helpers.go — shared emission helpers used by the impl_*.go constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

// addVertex inserts id, optionally placing it at p.
func addVertex(g *core.Graph, method, id string, p *core.Point) error {
	var err error
	if p != nil {
		err = g.SetPosition(id, *p)
	} else {
		err = g.AddVertex(id)
	}
	if err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addEdge connects u–v with weight w.
func addEdge(g *core.Graph, method, u, v string, w float64) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// onCircle returns the i-th of n points evenly spaced on a circle of the
// given radius centered at the origin, starting at angle 0.
func onCircle(i, n int, radius float64) core.Point {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return core.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}
