// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1. Node names are "r,c" regardless of the ID scheme.
//   - Nodes row-major; for each cell the right edge, then the down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor for the rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		var (
			r, c int
			id   string
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = fmt.Sprintf(gridIDFmt, r, c)
				if _, err := g.AddNode(id); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, id, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, id, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
