// SPDX-License-Identifier: MIT
package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/wmgraph/core"
)

// unset marks a node not yet discovered / a root's missing parent.
const unset = -1

// apFrame is one explicit-stack entry of the low-link walk.
type apFrame struct {
	node     int
	parent   int
	cursor   int
	children int
}

// ArticulationPoints returns the cut vertices of g: nodes whose removal
// increases the number of connected components. Every component is
// searched, each from its lowest-slot node. The result is in slot order;
// an empty graph yields an empty slice.
//
// Parallel edges count as one connection and self-loops are ignored.
//
// Complexity: O(V + E) time, O(V) extra space.
func ArticulationPoints(g *core.Graph) ([]core.NodeHandle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := buildAdjacency(g.Snapshot())
	cut := cutVertices(adj)

	out := make([]core.NodeHandle, 0, len(cut))
	for _, i := range cut {
		out = append(out, adj.handles[i])
	}

	return out, nil
}

// ArticulationPointNames is ArticulationPoints reported by node name.
func ArticulationPointNames(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := buildAdjacency(g.Snapshot())
	cut := cutVertices(adj)

	out := make([]string, 0, len(cut))
	for _, i := range cut {
		out = append(out, adj.names[i])
	}

	return out, nil
}

// cutVertices runs Tarjan's low-link walk over every component and returns
// the indexes of cut vertices in ascending order.
//
// Tree edge u→v: after v finishes, low[u] = min(low[u], low[v]); a non-root
// u with low[v] ≥ disc[u] is a cut vertex. Back edge u→w (w visited, not the
// parent): low[u] = min(low[u], disc[w]). A root is a cut vertex when it has
// more than one tree child.
func cutVertices(adj *adjacency) []int {
	n := adj.order()
	disc := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	isCut := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		disc[i], low[i], parent[i] = unset, unset, unset
	}

	stack := arraystack.New()
	timer := 0
	var (
		top  interface{}
		f    *apFrame
		next int
		p    int
	)
	for i = 0; i < n; i++ {
		if disc[i] != unset {
			continue
		}
		disc[i], low[i] = timer, timer
		timer++
		stack.Push(&apFrame{node: i, parent: unset})

		for !stack.Empty() {
			top, _ = stack.Peek()
			f = top.(*apFrame)

			if f.cursor < len(adj.nbrs[f.node]) {
				next = adj.nbrs[f.node][f.cursor]
				f.cursor++
				if disc[next] == unset {
					f.children++
					parent[next] = f.node
					disc[next], low[next] = timer, timer
					timer++
					stack.Push(&apFrame{node: next, parent: f.node})
				} else if next != f.parent {
					low[f.node] = min(low[f.node], disc[next])
				}
				continue
			}

			stack.Pop()
			p = f.parent
			if p == unset {
				if f.children > 1 {
					isCut[f.node] = true
				}
				continue
			}
			low[p] = min(low[p], low[f.node])
			if parent[p] != unset && low[f.node] >= disc[p] {
				isCut[p] = true
			}
		}
	}

	out := make([]int, 0)
	for i = 0; i < n; i++ {
		if isCut[i] {
			out = append(out, i)
		}
	}

	return out
}
