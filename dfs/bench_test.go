// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wmgraph/builder"
	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/dfs"
)

// buildLadder creates a 2×n ladder ("r,c" names) with one pendant node
// hanging off each end so the ends are cut vertices.
func buildLadder(b *testing.B, n int) *core.Graph {
	g, err := builder.BuildGraph(quietOpts(core.WithCapacity(2*n+2, 3*n)), nil, builder.Grid(2, n))
	if err != nil {
		b.Fatal(err)
	}
	for _, p := range [][2]string{{"head", "0,0"}, {"tail", fmt.Sprintf("1,%d", n-1)}} {
		if _, err = g.AddNode(p[0]); err != nil {
			b.Fatal(err)
		}
		if _, err = g.AddEdge(p[0], p[1], 1); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// BenchmarkDFS_Chain10000 measures traversal of a 10,000-node path.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, "N0"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkArticulationPoints_Ladder5000 measures the low-link walk on a
// 10,002-node ladder.
func BenchmarkArticulationPoints_Ladder5000(b *testing.B) {
	g := buildLadder(b, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cut, err := dfs.ArticulationPoints(g)
		if err != nil {
			b.Fatal(err)
		}
		if len(cut) != 2 {
			b.Fatalf("want 2 cut vertices, got %d", len(cut))
		}
	}
}
