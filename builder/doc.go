// Package builder provides deterministic fixture graphs for the search
// packages, assembled with functional options.
//
// Components:
//
//   - BuildGraph / Build: create a core.Graph and apply Constructors in order.
//   - Constructors: Cycle, Path, Star, Complete, Grid, RandomGeometric.
//     Every constructor except Complete also assigns vertex positions so
//     geometric heuristics can run on the fixture.
//   - Options: WithIDScheme (plus WithSymbolIDs, WithExcelColumnIDs,
//     WithPaddedIDs), WithSeed / WithRand, WithWeightFn (plus
//     WithConstantWeight, WithUniformWeight).
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graphs.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidRadius,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//   - With the default unit weights, positions are laid out so that the
//     straight-line length of every edge is at most its weight: Euclidean
//     distance is then a consistent heuristic on Cycle, Path, Star and Grid.
//     RandomGeometric guarantees the same for any seed.
//
// Example:
//
//	g, err := builder.Build(builder.RandomGeometric(200, 0.15),
//	    builder.WithSeed(42), builder.WithPaddedIDs("v", 3))
package builder
