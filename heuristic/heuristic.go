// Package heuristic provides the pluggable cost estimators consumed by the
// A* family of searches.
//
// A heuristic is any Func. Searches call it as h(g, v, goal) to estimate the
// remaining cost from v to goal. For A*'s early exit to be optimal the
// estimate must be admissible (never above the true remaining cost); the
// bidirectional variant additionally needs it to be consistent
// (h(u) <= w(u,v) + h(v) for every edge).
//
// Built-in estimators:
//
//   - Null:      always 0; A* degrades to uniform-cost search.
//   - Euclidean: straight-line distance between vertex positions.
//   - Manhattan: |dx| + |dy| between vertex positions (4-connected grids).
//   - Scaled:    factor·h for factor in [0,1].
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

// Sentinel errors for heuristic evaluation.
var (
	// ErrMissingPosition indicates a geometric heuristic was evaluated on a
	// vertex without position metadata, or on a graph that exposes none.
	ErrMissingPosition = errors.New("heuristic: missing position data")

	// ErrBadEstimate indicates a heuristic returned a negative, NaN or infinite value.
	ErrBadEstimate = errors.New("heuristic: estimate must be a non-negative finite number")

	// ErrUnknownHeuristic indicates ByName was given an unrecognized name.
	ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")
)

// Func estimates the remaining cost from v to goal on g.
type Func func(g core.Explorer, v, goal string) (float64, error)

// Null is the constant-zero heuristic.
func Null(core.Explorer, string, string) (float64, error) {
	return 0, nil
}

// Euclidean returns the straight-line distance between the positions of v
// and goal. g must implement core.Locator and both vertices must carry a
// position, otherwise ErrMissingPosition is returned.
func Euclidean(g core.Explorer, v, goal string) (float64, error) {
	a, b, err := positions(g, v, goal)
	if err != nil {
		return 0, err
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y), nil
}

// Manhattan returns |dx| + |dy| between the positions of v and goal.
// It is admissible only when every edge costs at least the Manhattan
// distance between its endpoints, as on 4-connected unit grids.
func Manhattan(g core.Explorer, v, goal string) (float64, error) {
	a, b, err := positions(g, v, goal)
	if err != nil {
		return 0, err
	}

	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y), nil
}

// Scaled returns factor·h. A factor in [0,1] preserves admissibility and
// consistency of h. Panics on a nil h or a factor outside [0,1].
func Scaled(h Func, factor float64) Func {
	if h == nil {
		panic("heuristic: Scaled(nil)")
	}
	if !(factor >= 0 && factor <= 1) {
		panic(fmt.Sprintf("heuristic: Scaled factor must be in [0,1], got %g", factor))
	}

	return func(g core.Explorer, v, goal string) (float64, error) {
		est, err := h(g, v, goal)
		if err != nil {
			return 0, err
		}

		return factor * est, nil
	}
}

// ByName returns the built-in heuristic called name ("null", "euclidean"
// or "manhattan", case-insensitive). The empty name selects Euclidean.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean":
		return Euclidean, nil
	case "null", "none":
		return Null, nil
	case "manhattan":
		return Manhattan, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Estimate evaluates h and rejects estimates that are not non-negative finite numbers.
func Estimate(h Func, g core.Explorer, v, goal string) (float64, error) {
	est, err := h(g, v, goal)
	if err != nil {
		return 0, err
	}
	if est < 0 || math.IsNaN(est) || math.IsInf(est, 0) {
		return 0, fmt.Errorf("%w: h(%s,%s)=%g", ErrBadEstimate, v, goal, est)
	}

	return est, nil
}

// positions looks up both endpoints through core.Locator.
func positions(g core.Explorer, v, goal string) (core.Point, core.Point, error) {
	loc, ok := g.(core.Locator)
	if !ok {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: graph %T has no positions", ErrMissingPosition, g)
	}
	a, err := loc.Position(v)
	if err != nil {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: %w", ErrMissingPosition, err)
	}
	b, err := loc.Position(goal)
	if err != nil {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: %w", ErrMissingPosition, err)
	}

	return a, b, nil
}
