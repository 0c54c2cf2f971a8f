// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighbourhood APIs (Neighbors, NeighborHandles, NeighborsOf) and the
//       symmetric pair index helpers used by edge mutators.
// Determinism:
//   - Neighbours are reported in first-connection order.
//   - pairs[(a,b)] and pairs[(b,a)] are index-aligned at all times.
// Concurrency:
//   - Public reads hold mu.RLock; helpers assume the caller holds mu.

package core

// pairKey is the ordered (a,b) key of the parallel-edge index.
type pairKey struct {
	a NodeHandle
	b NodeHandle
}

// Neighbors returns the distinct nodes adjacent to name.
//
// Implementation:
//   - Stage 1: Resolve name under the read lock (ErrNodeNotFound + log when absent).
//   - Stage 2: Copy each neighbour's Node value in first-connection order.
//
// Behavior highlights:
//   - Parallel edges do not repeat a neighbour.
//   - A self-loop lists the node itself once.
//
// Complexity:
//   - Time O(d), Space O(d), d = number of distinct neighbours.
func (g *Graph) Neighbors(name string) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.resolve(name)
	if !ok {
		return nil, g.nodeNotFound("Neighbors", name)
	}
	s := &g.nodes[h.slot]
	out := make([]Node, 0, len(s.nbrs))
	var nb NodeHandle
	for _, nb = range s.nbrs {
		out = append(out, copyNode(g.nodes[nb.slot].node))
	}

	return out, nil
}

// NeighborHandles is Neighbors reporting handles instead of Node values.
// Complexity: O(d).
func (g *Graph) NeighborHandles(name string) ([]NodeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.resolve(name)
	if !ok {
		return nil, g.nodeNotFound("NeighborHandles", name)
	}

	return append([]NodeHandle(nil), g.nodes[h.slot].nbrs...), nil
}

// NeighborsOf returns the distinct neighbour handles of h. Traversals use it
// to stay on handles and avoid name lookups; it also reaches nodes whose
// name was rebound.
// Complexity: O(d).
func (g *Graph) NeighborsOf(h NodeHandle) ([]NodeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.nodeAt(h)
	if !ok {
		return nil, g.staleHandle("NeighborsOf", h)
	}

	return append([]NodeHandle(nil), s.nbrs...), nil
}

// ParallelCount returns how many parallel edges connect u and v (0 when
// either node is missing).
func (g *Graph) ParallelCount(u, v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, ok := g.resolve(u)
	if !ok {
		return 0
	}
	hv, ok := g.resolve(v)
	if !ok {
		return 0
	}

	return len(g.pairs[pairKey{hu, hv}])
}

// linkPair registers e under (u,v) and (v,u), appending to both lists so
// they stay index-aligned. The first edge of a pair also links the nodes as
// neighbours. A self-loop is registered once under (u,u).
func (g *Graph) linkPair(u, v NodeHandle, e EdgeHandle) {
	fwd := pairKey{u, v}
	if len(g.pairs[fwd]) == 0 {
		g.nodes[u.slot].nbrs = append(g.nodes[u.slot].nbrs, v)
		if u != v {
			g.nodes[v.slot].nbrs = append(g.nodes[v.slot].nbrs, u)
		}
	}
	g.pairs[fwd] = append(g.pairs[fwd], e)
	if u != v {
		rev := pairKey{v, u}
		g.pairs[rev] = append(g.pairs[rev], e)
	}
}

// unlinkAt swap-removes position idx from both (u,v) and (v,u) lists. The
// same swap is applied to both lists so alignment holds. When the pair runs
// out of edges both keys are deleted and the nodes stop being neighbours.
func (g *Graph) unlinkAt(u, v NodeHandle, idx int) {
	fwd := pairKey{u, v}
	g.pairs[fwd] = swapRemove(g.pairs[fwd], idx)
	if u != v {
		rev := pairKey{v, u}
		g.pairs[rev] = swapRemove(g.pairs[rev], idx)
	}
	if len(g.pairs[fwd]) == 0 {
		g.dropPair(u, v)
	}
}

// dropPair deletes both pair keys and unlinks the neighbour entries.
func (g *Graph) dropPair(u, v NodeHandle) {
	delete(g.pairs, pairKey{u, v})
	delete(g.pairs, pairKey{v, u})
	g.nodes[u.slot].nbrs = removeHandle(g.nodes[u.slot].nbrs, v)
	if u != v {
		g.nodes[v.slot].nbrs = removeHandle(g.nodes[v.slot].nbrs, u)
	}
}

// swapRemove moves the last element into position i and truncates.
func swapRemove(list []EdgeHandle, i int) []EdgeHandle {
	last := len(list) - 1
	list[i] = list[last]
	list[last] = EdgeHandle{}

	return list[:last]
}

// removeHandle deletes h from list keeping the order of the rest.
func removeHandle(list []NodeHandle, h NodeHandle) []NodeHandle {
	for i, x := range list {
		if x == h {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
