// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: configuration getters, Stats and String.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

import (
	"strconv"
	"strings"
)

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// RebindsNames reports whether duplicate AddNode calls rebind the name
// instead of failing with ErrDuplicateNode.
// Complexity: O(1).
func (g *Graph) RebindsNames() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.rebindNames
}

// Stats produces a consistent snapshot of catalog sizes under one read lock.
//
// Returns:
//   - Stats: Order, Size, Pairs (unordered pairs with ≥1 edge), TotalWeight,
//     and the lengths of both free lists.
//
// Complexity:
//   - Time O(E + P), Space O(1).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pairs := 0
	for k := range g.pairs {
		// Each unordered pair appears twice, a loop once.
		if k.a.slot <= k.b.slot {
			pairs++
		}
	}

	return Stats{
		Order:       g.nodeCount,
		Size:        g.edgeCount,
		Pairs:       pairs,
		TotalWeight: g.totalWeight(),
		FreeNodes:   len(g.freeNodes),
		FreeEdges:   len(g.freeEdges),
	}
}

// String renders one "u - v weight" line per edge in edge slot order.
// Intended for debugging and test failure output.
// Complexity: O(E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for i := range g.edges {
		if !g.edges[i].alive {
			continue
		}
		e := g.edges[i].edge
		sb.WriteString(g.nodes[e.U.slot].node.Name)
		sb.WriteString(" - ")
		sb.WriteString(g.nodes[e.V.slot].node.Name)
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		sb.WriteByte('\n')
	}

	return sb.String()
}
