// Package dfs implements depth-first analyses over a core.Graph: traversal,
// articulation points (cut vertices) and connected components.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting, neighbor filtering and forest
//     traversal.
//   - ArticulationPoints: Tarjan's low-link method. A node is a cut vertex
//     when removing it (and its edges) increases the number of connected
//     components.
//   - Components: the number of connected components.
//
// Every analysis reads one consistent snapshot of the graph and runs on an
// explicit stack of (node, parent, neighbor cursor) frames, so very deep
// graphs never exhaust the goroutine stack.
//
// Parallel edges count as a single connection and self-loops are ignored;
// neither affects reachability.
//
// Complexity:
//
//   - DFS:                Time O(V+E), Memory O(V)
//   - ArticulationPoints: Time O(V+E), Memory O(V)
//   - Components:         Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartNodeNotFound  start name not bound to a live node
//   - context.Canceled      DFS canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
