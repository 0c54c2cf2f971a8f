// SPDX-License-Identifier: MIT
// File: arena.go
// Role: Slot allocation, recycling and handle resolution for node and edge arenas.
// Concurrency:
//   - Every helper here assumes g.mu is held by the caller.

package core

// nodeSlot is one entry of the node arena.
// nbrs lists distinct neighbours in first-connection order.
type nodeSlot struct {
	gen   uint32
	alive bool
	node  Node
	nbrs  []NodeHandle
}

// edgeSlot is one entry of the edge arena.
type edgeSlot struct {
	gen   uint32
	alive bool
	edge  Edge
}

// allocNode places n into a free slot (most recently freed first) or appends
// a new one. Generations start at 1 and grow on every reuse.
func (g *Graph) allocNode(n Node) NodeHandle {
	var slot uint32
	if k := len(g.freeNodes); k > 0 {
		slot = g.freeNodes[k-1]
		g.freeNodes = g.freeNodes[:k-1]
	} else {
		g.nodes = append(g.nodes, nodeSlot{})
		slot = uint32(len(g.nodes) - 1)
	}
	s := &g.nodes[slot]
	s.gen++
	s.alive = true
	s.node = n
	s.nbrs = nil
	g.nodeCount++

	return NodeHandle{slot: slot, gen: s.gen}
}

// freeNode releases the slot of a live node. The generation is kept so the
// next allocation can bump it.
func (g *Graph) freeNode(h NodeHandle) {
	s := &g.nodes[h.slot]
	s.alive = false
	s.node = Node{}
	s.nbrs = nil
	g.freeNodes = append(g.freeNodes, h.slot)
	g.nodeCount--
}

// allocEdge mirrors allocNode for the edge arena.
func (g *Graph) allocEdge(e Edge) EdgeHandle {
	var slot uint32
	if k := len(g.freeEdges); k > 0 {
		slot = g.freeEdges[k-1]
		g.freeEdges = g.freeEdges[:k-1]
	} else {
		g.edges = append(g.edges, edgeSlot{})
		slot = uint32(len(g.edges) - 1)
	}
	s := &g.edges[slot]
	s.gen++
	s.alive = true
	s.edge = e
	g.edgeCount++

	return EdgeHandle{slot: slot, gen: s.gen}
}

func (g *Graph) freeEdge(h EdgeHandle) {
	s := &g.edges[h.slot]
	s.alive = false
	s.edge = Edge{}
	g.freeEdges = append(g.freeEdges, h.slot)
	g.edgeCount--
}

// nodeAt resolves h to its live slot. Stale or foreign handles yield false.
func (g *Graph) nodeAt(h NodeHandle) (*nodeSlot, bool) {
	if int(h.slot) >= len(g.nodes) {
		return nil, false
	}
	s := &g.nodes[h.slot]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

// edgeAt resolves h to its live slot.
func (g *Graph) edgeAt(h EdgeHandle) (*edgeSlot, bool) {
	if int(h.slot) >= len(g.edges) {
		return nil, false
	}
	s := &g.edges[h.slot]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

// resolve maps a name to its bound handle.
func (g *Graph) resolve(name string) (NodeHandle, bool) {
	h, ok := g.names[name]
	if !ok {
		return NodeHandle{}, false
	}
	if _, live := g.nodeAt(h); !live {
		return NodeHandle{}, false
	}

	return h, true
}

// resolvePair resolves both endpoint names, logging the first missing one.
func (g *Graph) resolvePair(op, u, v string) (NodeHandle, NodeHandle, error) {
	hu, ok := g.resolve(u)
	if !ok {
		return NodeHandle{}, NodeHandle{}, g.nodeNotFound(op, u)
	}
	hv, ok := g.resolve(v)
	if !ok {
		return NodeHandle{}, NodeHandle{}, g.nodeNotFound(op, v)
	}

	return hu, hv, nil
}
