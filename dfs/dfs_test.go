// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/builder"
	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/dfs"
)

// buildChain creates an undirected path N0 - N1 - … - N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	g, err := builder.BuildGraph(quietOpts(), []builder.BuilderOption{builder.WithSymbNumb("N")}, builder.Path(n))
	require.NoError(t, err)

	return g
}

// names maps handles back to node names.
func names(t *testing.T, g *core.Graph, hs []core.NodeHandle) []string {
	t.Helper()
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		n, err := g.Node(h)
		require.NoError(t, err)
		out = append(out, n.Name)
	}

	return out
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(quietGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_ChainOrderDepthParent(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)

	assert.Equal(t, []string{"N3", "N2", "N1", "N0"}, names(t, g, res.Order))
	h3, err := g.Handle("N3")
	require.NoError(t, err)
	h2, err := g.Handle("N2")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth[h3])
	assert.Equal(t, h2, res.Parent[h3])
	assert.Len(t, res.Visited, 4)
	assert.Equal(t, 1, res.Roots())
}

func TestDFS_StartInMiddle(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, "N2")
	require.NoError(t, err)
	// N2's neighbours in edge order: N1 (edge N1-N2) then N3.
	assert.Equal(t, []string{"N0", "N1", "N4", "N3", "N2"}, names(t, g, res.Order))
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 6)
	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, names(t, g, res.Order))

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, names(t, g, res.Order))
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildChain(t, 4)
	blocked, err := g.Handle("N2")
	require.NoError(t, err)

	res, err := dfs.DFS(g, "N0", dfs.WithFilterNeighbor(func(h core.NodeHandle) bool {
		return h != blocked
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, names(t, g, res.Order))
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildChain(t, 3)
	_, err := g.AddNode("iso")
	require.NoError(t, err)
	_, err = g.AddNode("p")
	require.NoError(t, err)
	_, err = g.AddNode("q")
	require.NoError(t, err)
	_, err = g.AddEdge("p", "q", 1)
	require.NoError(t, err)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0", "iso", "q", "p"}, names(t, g, res.Order))
	assert.Equal(t, 3, res.Roots())
}

func TestDFS_Hooks(t *testing.T) {
	g := buildChain(t, 3)

	var pre, post []string
	res, err := dfs.DFS(g, "N0",
		dfs.WithOnVisit(func(h core.NodeHandle) error {
			n, _ := g.Node(h)
			pre = append(pre, n.Name)
			return nil
		}),
		dfs.WithOnExit(func(h core.NodeHandle) error {
			n, _ := g.Node(h)
			post = append(post, n.Name)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, pre)
	assert.Equal(t, []string{"N2", "N1", "N0"}, post)
	assert.Equal(t, post, names(t, g, res.Order))
}

func TestDFS_HookErrorsAbort(t *testing.T) {
	g := buildChain(t, 3)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(h core.NodeHandle) error {
		if n, _ := g.Node(h); n.Name == "N1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Nil(t, res.Order)

	res, err = dfs.DFS(g, "N0", dfs.WithOnExit(func(core.NodeHandle) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_ContextCancelled(t *testing.T) {
	g := buildChain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DeepChainNoRecursion(t *testing.T) {
	g := buildChain(t, 50000)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 50000)
}
