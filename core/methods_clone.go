// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone copies arenas slot for slot, so every handle valid on the source
//     is valid on the clone and addresses the same logical item.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep, independent copy of the graph: arenas, free lists,
// name index and pair index. Options (logger, loops, rebinding) carry over.
//
// Analyses that must not observe concurrent mutations can run on a clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		logger:      g.logger,
		allowLoops:  g.allowLoops,
		rebindNames: g.rebindNames,
		nodes:       make([]nodeSlot, len(g.nodes)),
		freeNodes:   append([]uint32(nil), g.freeNodes...),
		edges:       append([]edgeSlot(nil), g.edges...),
		freeEdges:   append([]uint32(nil), g.freeEdges...),
		nodeCount:   g.nodeCount,
		edgeCount:   g.edgeCount,
		names:       make(map[string]NodeHandle, len(g.names)),
		pairs:       make(map[pairKey][]EdgeHandle, len(g.pairs)),
	}
	for i := range g.nodes {
		s := g.nodes[i]
		s.node = copyNode(s.node)
		s.nbrs = append([]NodeHandle(nil), s.nbrs...)
		clone.nodes[i] = s
	}
	for name, h := range g.names {
		clone.names[name] = h
	}
	for k, list := range g.pairs {
		clone.pairs[k] = append([]EdgeHandle(nil), list...)
	}

	return clone
}

// Clear removes every node and edge while preserving options. Slots are
// released rather than discarded, so handles issued before Clear stay
// stale instead of aliasing nodes added afterwards.
// Complexity: O(V + E)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.edges {
		if g.edges[i].alive {
			g.freeEdge(EdgeHandle{slot: uint32(i), gen: g.edges[i].gen})
		}
	}
	for i := range g.nodes {
		if g.nodes[i].alive {
			g.freeNode(NodeHandle{slot: uint32(i), gen: g.nodes[i].gen})
		}
	}
	g.names = make(map[string]NodeHandle)
	g.pairs = make(map[pairKey][]EdgeHandle)
}
