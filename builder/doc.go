// Package builder assembles canonical multigraph topologies on a core.Graph.
//
// A Constructor is a deterministic mutation (add nodes, then edges in a fixed
// order). BuildGraph creates a graph, resolves BuilderOptions once and applies
// constructors in order, so several shapes can be composed into one fixture:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSymbNumb("v"), builder.WithSeed(7)},
//		builder.Cycle(6),
//		builder.Bundle(2),
//	)
//
// Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
// Bundle multiplies every existing node pair into k parallel edges, which is
// the usual way to turn a simple shape into a multigraph.
//
// Weights come from a WeightFn (constant 1 by default); stochastic shapes and
// weight functions draw from the configured *rand.Rand, so equal seeds give
// equal graphs.
package builder
