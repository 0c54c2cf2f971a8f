// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures built on core.Graph.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/matrix"
)

// eps is the absolute tolerance used for floating-point comparisons.
const eps = 1e-9

// approx compares float slices element-wise within eps.
var approx = cmpopts.EquateApprox(0, eps)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set copy path in code under test.
type hide struct{ matrix.Matrix }

// quietGraph returns a graph whose not-found warnings are discarded.
func quietGraph(opts ...core.GraphOption) *core.Graph {
	opts = append([]core.GraphOption{core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)

	return core.NewGraph(opts...)
}

// buildGraph adds nodes in order, then edges {u, v, w}.
func buildGraph(t *testing.T, nodes []string, edges []struct {
	u, v string
	w    float64
}) *core.Graph {
	t.Helper()
	g := quietGraph(core.WithLoops())
	for _, n := range nodes {
		_, err := g.AddNode(n)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// abcdGraph is the four-node weighted fixture:
// a-b 0.51, a-c 0.39, b-c 0.4, b-d 0.6.
func abcdGraph(t *testing.T) *core.Graph {
	return buildGraph(t, []string{"a", "b", "c", "d"}, []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 0.51},
		{"a", "c", 0.39},
		{"b", "c", 0.4},
		{"b", "d", 0.6},
	})
}

// MustDenseRows builds a Dense from rows or fails the test.
func MustDenseRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRowsEqual diffs two nested float slices with go-cmp.
func requireRowsEqual(t *testing.T, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// checkEigenpairs asserts A·q_k ≈ λ_k·q_k for every column k of q.
func checkEigenpairs(t *testing.T, a matrix.Matrix, vals []float64, q matrix.Matrix) {
	t.Helper()
	n := a.Rows()
	var i, j, k int
	var sum float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			sum = 0
			for j = 0; j < n; j++ {
				sum += MustAt(t, a, i, j) * MustAt(t, q, j, k)
			}
			if math.Abs(sum-vals[k]*MustAt(t, q, i, k)) > 1e-7 {
				t.Fatalf("eigenpair %d violated at row %d: got %v, want %v", k, i, sum, vals[k]*MustAt(t, q, i, k))
			}
		}
	}
}
