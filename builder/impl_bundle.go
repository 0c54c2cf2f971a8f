// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bundle.go - Bundle(k): widen every connected pair to k parallel edges.
//
// Contract:
//   - k ≥ 1. Pairs already carrying ≥ k edges are left alone.
//   - Pairs are visited in the order their first edge appears in edge slot
//     order; new edges draw fresh weights.
//   - Self-loops are bundled like any other pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodBundle = "Bundle"
	minBundle    = 1
)

// Bundle returns a Constructor that turns the current simple shape into a
// multigraph with k edges per connected pair.
func Bundle(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minBundle {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBundle, k, minBundle, ErrTooFewVertices)
		}

		view := g.Snapshot()
		pos := view.IndexOf()
		seen := make(map[[2]int]bool, len(view.Edges))
		var (
			e      core.Edge
			iu, iv int
			key    [2]int
			have   []core.EdgeHandle
			err    error
		)
		for _, e = range view.Edges {
			iu, iv = pos[e.U], pos[e.V]
			if iu > iv {
				iu, iv = iv, iu
			}
			key = [2]int{iu, iv}
			if seen[key] {
				continue
			}
			seen[key] = true

			u, v := view.Nodes[iu].Name, view.Nodes[iv].Name
			if have, err = g.ParallelEdges(u, v); err != nil {
				return fmt.Errorf("%s: ParallelEdges(%s-%s): %w", methodBundle, u, v, err)
			}
			for c := len(have); c < k; c++ {
				if err = addEdge(methodBundle, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
