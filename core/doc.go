// Package core provides the in-memory, undirected, weighted multigraph store
// that the matrix and dfs packages analyse.
//
// The Graph G = (V,E) keeps:
//
//   - Arena storage: nodes and edges in dense slot slices addressed by
//     NodeHandle / EdgeHandle {slot, generation}. Freed slots are recycled;
//     the generation bump makes stale handles fail instead of aliasing.
//   - A name index: name → NodeHandle. Names are unique by default.
//   - A symmetric parallel-edge index: pairs[(a,b)] and pairs[(b,a)] hold the
//     same edge handles in the same order, so parallel index i is the same
//     edge from either side.
//   - An incremental aggregate per node, Node.OptimalWeightedDegree, equal to
//     the sum of incident edge weights after every mutation.
//
// Parallel edges are first-class: AddEdge always creates a new edge, and
// UpdateEdge / RemoveEdge / EdgeWeight take a parallel index plus a bulk flag.
//
// Configuration Options (GraphOption):
//
//	- WithLogger(*slog.Logger)
//	    Destination of not-found warnings (default slog.Default()).
//
//	- WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	- WithNameRebinding()
//	    Legacy AddNode: a duplicate name moves to the new node instead of
//	    failing with ErrDuplicateNode.
//
//	- WithCapacity(nodes, edges)
//	    Arena preallocation.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name) (NodeHandle, error)                       // O(1)
//	RemoveNode(h) error                                     // O(deg)
//	ContainsNode(name) bool                                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v, w) (EdgeHandle, error)                    // O(1)
//	UpdateEdge(u, v, w, parallelIdx, updateAll) error       // O(1)/O(k)
//	RemoveEdge(u, v, parallelIdx, removeAll) error          // O(1)/O(k)
//
//	// Queries
//	EdgeWeight(u, v, parallelIdx, getAllParallel) (float64, error)
//	DegreeOf(name) (float64, error)                         // recomputed
//	Neighbors(name) / NeighborHandles(name) / NeighborsOf(h)
//	CumulativeEdgeWeights() []float64
//	Order(), Size(), Stats(), String()
//
// Errors:
//
//	Not-found conditions are logged at Warn where they are detected and
//	returned as wrapped sentinels (ErrNodeNotFound, ErrEdgeNotFound,
//	ErrParallelIndex). Value-returning queries still return 0 in that case.
//
// Concurrency:
//
//	A single sync.RWMutex guards the store: one writer or many readers.
//	Analyses that need a frozen view should work on Clone().
package core
