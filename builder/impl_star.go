// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; index 0 is the center, spokes 0-i for i=1..n-1.
//   - Wheel: n ≥ 4; hub 0 with spokes, rim cycle over 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		_, err := hub(methodStar, g, cfg, n)

		return err
	}
}

// Wheel returns a Constructor for the wheel W_n: a star whose leaves also
// form a cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		names, err := hub(methodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err = addEdge(methodWheel, g, cfg, names[i], names[next]); err != nil {
				return err
			}
		}

		return nil
	}
}

func hub(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	names, err := addNodes(method, g, cfg, n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = addEdge(method, g, cfg, names[0], names[i]); err != nil {
			return nil, err
		}
	}

	return names, nil
}
