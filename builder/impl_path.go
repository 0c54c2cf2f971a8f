// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges i-(i+1) for i=0..n-2.
//   - Cycle: n ≥ 3, path edges plus the closing (n-1)-0.
//   - Nodes are added in index order, edges in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the n-node path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return ring(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor for the n-node cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(methodCycle, g, cfg, n, true)
	}
}

func ring(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	names, err := addNodes(method, g, cfg, n)
	if err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err = addEdge(method, g, cfg, names[i], names[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, g, cfg, names[n-1], names[0])
	}

	return nil
}
