// Package builder generates deterministic graph topologies as
// *adjacency.List[int] fixtures for the engine: cycles, paths, stars,
// complete graphs, grids and G(n, p) random graphs.
//
// Usage:
//
//	l, err := builder.Build(
//	    []adjacency.Option{adjacency.WithDirected(false)},
//	    []builder.Option{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
//	    builder.Grid(10, 10),
//	)
//	e := engine.New[int](l.Vertices(), l)
//
// Determinism: the same seed, weight function and constructor order always
// produce the same list. Unseeded builds use a fixed default seed.
//
// Errors: constructors return ErrTooFewVertices or ErrInvalidProbability
// wrapped with method context; Build wraps them once more as "Build: ...".
// Weight-function factories panic on invalid bounds, like option constructors
// elsewhere in this module.
package builder
