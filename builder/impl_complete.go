// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1; one edge per unordered pair i<j, emitted in (i,j) lexicographic
//     order, so n(n-1)/2 edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		names, err := addNodes(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, cfg, names[i], names[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
