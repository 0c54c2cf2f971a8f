// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wmgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/core"
)

// Common node names used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
	NodeX = "x"

	NodeMissing = "missing"
)

// weightEps bounds floating-point drift in aggregate comparisons.
const weightEps = 1e-9

// quietGraph returns a graph whose log output is discarded.
func quietGraph(opts ...core.GraphOption) *core.Graph {
	opts = append([]core.GraphOption{core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)

	return core.NewGraph(opts...)
}

// capturingGraph returns a graph logging JSON records (Debug and up) into buf.
func capturingGraph(opts ...core.GraphOption) (*core.Graph, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]core.GraphOption{core.WithLogger(l)}, opts...)

	return core.NewGraph(opts...), buf
}

// mustNodes adds names in order and returns their handles.
func mustNodes(t testing.TB, g *core.Graph, names ...string) []core.NodeHandle {
	t.Helper()
	out := make([]core.NodeHandle, 0, len(names))
	for _, n := range names {
		h, err := g.AddNode(n)
		require.NoError(t, err, "AddNode(%q)", n)
		out = append(out, h)
	}

	return out
}

// mustEdge adds one edge or fails the test.
func mustEdge(t testing.TB, g *core.Graph, u, v string, w float64) core.EdgeHandle {
	t.Helper()
	e, err := g.AddEdge(u, v, w)
	require.NoError(t, err, "AddEdge(%q, %q, %v)", u, v, w)

	return e
}

// aggregatesMatch reports whether every node's cached aggregate equals the
// degree recomputed from live edges.
func aggregatesMatch(g *core.Graph) bool {
	for _, n := range g.Nodes() {
		d, err := g.DegreeOf(n.Name)
		if err != nil || math.Abs(d-n.OptimalWeightedDegree) > weightEps {
			return false
		}
	}

	return true
}

// pairsSymmetric reports whether every (u,v) list mirrors (v,u) index by index.
func pairsSymmetric(g *core.Graph, names []string) bool {
	for _, u := range names {
		for _, v := range names {
			fwd, err1 := g.ParallelEdges(u, v)
			rev, err2 := g.ParallelEdges(v, u)
			if (err1 == nil) != (err2 == nil) || len(fwd) != len(rev) {
				return false
			}
			for i := range fwd {
				if fwd[i] != rev[i] {
					return false
				}
			}
		}
	}

	return true
}
