// SPDX-License-Identifier: MIT
package dfs

import "github.com/katalvlaran/wmgraph/core"

// Components returns the number of connected components of g (isolated
// nodes count as one each; the empty graph has zero).
//
// Complexity: O(V + E).
func Components(g *core.Graph) (int, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return 0, err
	}

	return res.Roots(), nil
}
