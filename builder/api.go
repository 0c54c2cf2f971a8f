// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs (same names, same slot order, same weights).
//   - Constructors return sentinel errors; they never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies each
// constructor in order. The first error is returned wrapped as
// "BuildGraph: %w"; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts cfg.idFn(0..n-1) and returns the names.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = cfg.idFn(i)
		if _, err := g.AddNode(names[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, names[i], err)
		}
	}

	return names, nil
}

// addEdge inserts u-v with the next configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
