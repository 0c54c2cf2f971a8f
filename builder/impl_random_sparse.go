// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - For 0 < p < 1 an RNG is required (ErrNeedRandSource).
//   - Pairs i<j are visited in lexicographic order and each is kept when
//     rng.Float64() < p. p=0 gives no edges, p=1 gives K_n; neither draws.
//   - With loops enabled on the graph, the diagonal i=i is sampled too.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		names, err := addNodes(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		first := 1
		if g.Looped() {
			first = 0
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + first; j < n; j++ {
				if !keep(cfg, p) {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, names[i], names[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
