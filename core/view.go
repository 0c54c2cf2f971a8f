// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (consistent snapshots and induced subgraphs).
// Determinism:
//   - Snapshot lists nodes and edges in slot order.
// Concurrency:
//   - Read lock on source; results never alias source storage.

package core

// View is a consistent, read-only copy of the live catalog taken under one
// read lock. Handles[i] addresses Nodes[i]; Edges reference the same handles.
type View struct {
	Handles []NodeHandle
	Nodes   []Node
	Edges   []Edge
}

// IndexOf returns a handle → position map over v.Handles.
// Complexity: O(V).
func (v View) IndexOf() map[NodeHandle]int {
	idx := make(map[NodeHandle]int, len(v.Handles))
	for i, h := range v.Handles {
		idx[h] = i
	}

	return idx
}

// Snapshot returns the live nodes and edges of g captured atomically, so
// derived structures (matrices, traversals) never see a half-applied
// mutation.
//
// Complexity: O(V + E). Concurrency: read lock only.
func (g *Graph) Snapshot() View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := View{
		Handles: make([]NodeHandle, 0, g.nodeCount),
		Nodes:   make([]Node, 0, g.nodeCount),
		Edges:   make([]Edge, 0, g.edgeCount),
	}
	for i := range g.nodes {
		if g.nodes[i].alive {
			v.Handles = append(v.Handles, NodeHandle{slot: uint32(i), gen: g.nodes[i].gen})
			v.Nodes = append(v.Nodes, copyNode(g.nodes[i].node))
		}
	}
	for i := range g.edges {
		if g.edges[i].alive {
			v.Edges = append(v.Edges, g.edges[i].edge)
		}
	}

	return v
}

// InducedSubgraph returns a new Graph induced by the names in keep: only
// nodes whose name maps to true, and every edge (parallels included) whose
// endpoints are both kept. Options carry over; handles do not, since the
// result is built fresh in slot order. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		logger:      g.logger,
		allowLoops:  g.allowLoops,
		rebindNames: g.rebindNames,
		names:       make(map[string]NodeHandle),
		pairs:       make(map[pairKey][]EdgeHandle),
	}

	remap := make(map[NodeHandle]NodeHandle)
	var (
		i   int
		old NodeHandle
		n   Node
	)
	for i = range g.nodes {
		if !g.nodes[i].alive {
			continue
		}
		n = g.nodes[i].node
		if !keep[n.Name] {
			continue
		}
		old = NodeHandle{slot: uint32(i), gen: g.nodes[i].gen}
		n = copyNode(n)
		n.OptimalWeightedDegree = 0
		remap[old] = out.allocNode(n)
		// Under rebinding several nodes may share a name; the latest bound wins.
		if g.names[n.Name] == old || !out.hasName(n.Name) {
			out.names[n.Name] = remap[old]
		}
	}

	var (
		e      Edge
		nu, nv NodeHandle
		okU    bool
		okV    bool
	)
	for i = range g.edges {
		if !g.edges[i].alive {
			continue
		}
		e = g.edges[i].edge
		nu, okU = remap[e.U]
		nv, okV = remap[e.V]
		if !okU || !okV {
			continue
		}
		out.insertEdge(nu, nv, e.Weight)
	}

	return out
}

func (g *Graph) hasName(name string) bool {
	_, ok := g.names[name]

	return ok
}
