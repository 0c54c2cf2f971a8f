// Package wmgraph is an in-memory weighted undirected multigraph with the
// analysis views that usually follow it: adjacency matrices, spectra and
// cut vertices.
//
// What is inside:
//
//	core/     - the Graph store: named nodes, parallel edges, self-loops,
//	            generation-checked handles and incrementally maintained
//	            weighted degrees, all guarded by one RWMutex
//	matrix/   - Dense matrices, ConvertToAdjMatrix and a Jacobi eigen solver
//	            (Eigen, Eigenvals, SpectralRadius)
//	dfs/      - iterative depth-first traversal, connected components and
//	            Tarjan articulation points
//	metrics/  - a Prometheus collector exporting graph statistics
//	examples/ - a runnable transport-network walkthrough
//
// Quick start:
//
//	g := core.NewGraph()
//	_, _ = g.AddNode("A")
//	_, _ = g.AddNode("B")
//	_, _ = g.AddEdge("A", "B", 1.5)
//	_, _ = g.AddEdge("A", "B", 2.0) // parallel edge
//	w, _ := g.EdgeWeight("A", "B", 0, false) // 3.5
//
//	am, _ := matrix.ConvertToAdjMatrix(g)
//	res := matrix.Eigenvals(am.Dense)
//	cut, _ := dfs.ArticulationPointNames(g)
//
// Derived views read one consistent core snapshot, so they are safe to
// compute while other goroutines mutate the graph.
package wmgraph
