// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wmgraph/core"
)

// BenchmarkAddEdge measures parallel-edge insertion between a fixed set of nodes.
func BenchmarkAddEdge(b *testing.B) {
	g := quietGraph(core.WithCapacity(64, b.N))
	names := make([]string, 64)
	for i := range names {
		names[i] = fmt.Sprintf("N%d", i)
	}
	mustNodes(b, g, names...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(names[i%64], names[(i*7+1)%64], 1)
	}
}

// BenchmarkRemoveNode measures the cascade on a star with 1,000 leaves.
func BenchmarkRemoveNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := quietGraph(core.WithCapacity(1001, 1000))
		hub := mustNodes(b, g, "hub")[0]
		for j := 0; j < 1000; j++ {
			leaf := fmt.Sprintf("L%d", j)
			mustNodes(b, g, leaf)
			mustEdge(b, g, "hub", leaf, 1)
		}
		b.StartTimer()

		if err := g.RemoveNode(hub); err != nil {
			b.Fatal(err)
		}
	}
}
