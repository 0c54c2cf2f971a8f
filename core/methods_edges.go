// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeByHandle/RemoveEdge/
//       RemoveEdgeByHandle/ContainsEdge/Edge/Edges/Size.
// Determinism:
//   - Edges() enumerates live edge slots in ascending slot order.
//   - Parallel index i addresses the same edge from (u,v) and (v,u).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates a new parallel edge between u and v.
//
// Steps:
//  1. Validate weight (finite) and loop policy.
//  2. Resolve both names; a missing one is logged and ErrNodeNotFound returned
//     without mutation.
//  3. Allocate the edge, append it to both (u,v) and (v,u) lists.
//  4. Add weight to both endpoints' OptimalWeightedDegree (once for a loop).
//
// An existing edge between u and v is never merged with the new one.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) (EdgeHandle, error) {
	const op = "AddEdge"
	if err := g.checkEdge(op, u == v, weight); err != nil {
		return EdgeHandle{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	hu, hv, err := g.resolvePair(op, u, v)
	if err != nil {
		return EdgeHandle{}, err
	}

	return g.insertEdge(hu, hv, weight), nil
}

// AddEdgeByHandle is AddEdge addressed by node handles. It also reaches
// nodes whose name has been rebound.
func (g *Graph) AddEdgeByHandle(u, v NodeHandle, weight float64) (EdgeHandle, error) {
	const op = "AddEdgeByHandle"
	if err := g.checkEdge(op, u == v, weight); err != nil {
		return EdgeHandle{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeAt(u); !ok {
		return EdgeHandle{}, g.staleHandle(op, u)
	}
	if _, ok := g.nodeAt(v); !ok {
		return EdgeHandle{}, g.staleHandle(op, v)
	}

	return g.insertEdge(u, v, weight), nil
}

func (g *Graph) checkEdge(op string, loop bool, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%s: %w", op, ErrBadWeight)
	}
	if loop && !g.allowLoops {
		return fmt.Errorf("%s: %w", op, ErrLoopNotAllowed)
	}

	return nil
}

// insertEdge stores a new edge and updates both aggregates.
func (g *Graph) insertEdge(u, v NodeHandle, weight float64) EdgeHandle {
	e := g.allocEdge(Edge{U: u, V: v, Weight: weight})
	g.linkPair(u, v, e)
	g.addDegree(u, v, weight)

	return e
}

// addDegree adds delta to the aggregate of both endpoints; a loop counts once.
func (g *Graph) addDegree(u, v NodeHandle, delta float64) {
	g.nodes[u.slot].node.OptimalWeightedDegree += delta
	if u != v {
		g.nodes[v.slot].node.OptimalWeightedDegree += delta
	}
}

// RemoveEdge deletes edges between u and v.
//
// Single mode (removeAll=false) removes the parallel edge at parallelIdx,
// subtracts its weight from both endpoints and swap-removes it from both
// symmetric lists: the positions of other parallel edges may change, the
// alignment of the two lists does not.
// Bulk mode (removeAll=true) removes every parallel edge, subtracting each
// weight in turn, then deletes both pair entries.
//
// Errors:
//   - ErrNodeNotFound, ErrEdgeNotFound (logged, no mutation).
//   - ErrParallelIndex in single mode when parallelIdx is out of range.
//
// Complexity: O(1) single, O(k) bulk with k parallel edges.
func (g *Graph) RemoveEdge(u, v string, parallelIdx int, removeAll bool) error {
	const op = "RemoveEdge"

	g.mu.Lock()
	defer g.mu.Unlock()

	hu, hv, err := g.resolvePair(op, u, v)
	if err != nil {
		return err
	}
	list := g.pairs[pairKey{hu, hv}]
	if len(list) == 0 {
		return g.edgeNotFound(op, u, v)
	}
	if removeAll {
		g.removeAllBetween(hu, hv)

		return nil
	}
	if parallelIdx < 0 || parallelIdx >= len(list) {
		return g.badParallelIndex(op, u, v, parallelIdx, len(list))
	}
	g.removeAt(hu, hv, parallelIdx)

	return nil
}

// RemoveEdgeByHandle deletes exactly the edge e.
func (g *Graph) RemoveEdgeByHandle(e EdgeHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.edgeAt(e)
	if !ok {
		g.logger.Warn("edge handle does not resolve", "op", "RemoveEdgeByHandle", "handle", e.String())

		return fmt.Errorf("RemoveEdgeByHandle(%s): %w", e, ErrEdgeNotFound)
	}
	u, v := s.edge.U, s.edge.V
	for i, x := range g.pairs[pairKey{u, v}] {
		if x == e {
			g.removeAt(u, v, i)

			return nil
		}
	}

	// Unreachable while the pair index is consistent.
	return fmt.Errorf("RemoveEdgeByHandle(%s): %w", e, ErrEdgeNotFound)
}

// removeAt deletes the edge at parallel position idx of (u,v).
func (g *Graph) removeAt(u, v NodeHandle, idx int) {
	e := g.pairs[pairKey{u, v}][idx]
	g.addDegree(u, v, -g.edges[e.slot].edge.Weight)
	g.freeEdge(e)
	g.unlinkAt(u, v, idx)
}

// removeAllBetween deletes every parallel edge of (u,v), edge by edge.
func (g *Graph) removeAllBetween(u, v NodeHandle) {
	list := g.pairs[pairKey{u, v}]
	var e EdgeHandle
	for _, e = range list {
		g.addDegree(u, v, -g.edges[e.slot].edge.Weight)
		g.freeEdge(e)
	}
	g.dropPair(u, v)
}

// ContainsEdge reports whether at least one edge connects u and v.
// Complexity: O(1).
func (g *Graph) ContainsEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, ok := g.resolve(u)
	if !ok {
		return false
	}
	hv, ok := g.resolve(v)
	if !ok {
		return false
	}

	return len(g.pairs[pairKey{hu, hv}]) > 0
}

// Edge returns the first parallel edge between u and v.
func (g *Graph) Edge(u, v string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, ok := g.resolve(u)
	if !ok {
		return Edge{}, false
	}
	hv, ok := g.resolve(v)
	if !ok {
		return Edge{}, false
	}
	list := g.pairs[pairKey{hu, hv}]
	if len(list) == 0 {
		return Edge{}, false
	}

	return g.edges[list[0].slot].edge, true
}

// EdgeByHandle returns the edge addressed by e.
func (g *Graph) EdgeByHandle(e EdgeHandle) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.edgeAt(e)
	if !ok {
		return Edge{}, fmt.Errorf("EdgeByHandle(%s): %w", e, ErrEdgeNotFound)
	}

	return s.edge, nil
}

// ParallelEdges returns the handles of the (u,v) list in parallel-index order.
func (g *Graph) ParallelEdges(u, v string) ([]EdgeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hu, hv, err := g.resolvePair("ParallelEdges", u, v)
	if err != nil {
		return nil, err
	}

	return append([]EdgeHandle(nil), g.pairs[pairKey{hu, hv}]...), nil
}

// Edges returns all live edges in slot order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, g.edges[i].edge)
		}
	}

	return out
}

// EdgeHandles returns the handles of all live edges in slot order.
func (g *Graph) EdgeHandles() []EdgeHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeHandle, 0, g.edgeCount)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, EdgeHandle{slot: uint32(i), gen: g.edges[i].gen})
		}
	}

	return out
}

// Size returns the number of live edges, each parallel instance counted.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
