// SPDX-License-Identifier: MIT
package dfs

import "github.com/katalvlaran/wmgraph/core"

// adjacency is an index-based simple-graph view of one core.View.
// Parallel edges collapse to one neighbor entry and self-loops are dropped:
// neither changes reachability or cut vertices.
type adjacency struct {
	handles []core.NodeHandle
	names   []string
	index   map[core.NodeHandle]int
	nbrs    [][]int // distinct neighbors in edge slot order
}

func buildAdjacency(v core.View) *adjacency {
	n := len(v.Handles)
	adj := &adjacency{
		handles: v.Handles,
		names:   make([]string, n),
		index:   v.IndexOf(),
		nbrs:    make([][]int, n),
	}
	for i := range v.Nodes {
		adj.names[i] = v.Nodes[i].Name
	}

	seen := make(map[[2]int]struct{}, len(v.Edges))
	var (
		e      core.Edge
		iu, iv int
		key    [2]int
	)
	for _, e = range v.Edges {
		iu, iv = adj.index[e.U], adj.index[e.V]
		if iu == iv {
			continue
		}
		key = [2]int{min(iu, iv), max(iu, iv)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		adj.nbrs[iu] = append(adj.nbrs[iu], iv)
		adj.nbrs[iv] = append(adj.nbrs[iv], iu)
	}

	return adj
}

func (a *adjacency) order() int { return len(a.handles) }
