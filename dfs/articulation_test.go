// SPDX-License-Identifier: MIT
package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/builder"
	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/dfs"
	"github.com/katalvlaran/wmgraph/internal/fixture"
)

func TestArticulationPoints_Fixtures(t *testing.T) {
	all, err := fixture.Builtin()
	require.NoError(t, err)

	for _, fg := range all {
		fg := fg
		t.Run(fg.Name, func(t *testing.T) {
			g, err := fg.Build()
			require.NoError(t, err)

			got, err := dfs.ArticulationPointNames(g)
			require.NoError(t, err)
			assert.ElementsMatch(t, fg.Expect.Articulation, got)

			hs, err := dfs.ArticulationPoints(g)
			require.NoError(t, err)
			assert.Equal(t, got, names(t, g, hs))

			n, err := dfs.Components(g)
			require.NoError(t, err)
			assert.Equal(t, fg.Expect.Components, n)
		})
	}
}

// TestArticulationPoints_MatchDefinition checks every node against the
// definition: removing a cut vertex raises the component count.
func TestArticulationPoints_MatchDefinition(t *testing.T) {
	all, err := fixture.Builtin()
	require.NoError(t, err)

	for _, fg := range all {
		fg := fg
		t.Run(fg.Name, func(t *testing.T) {
			g, err := fg.Build()
			require.NoError(t, err)
			base, err := dfs.Components(g)
			require.NoError(t, err)

			cut, err := dfs.ArticulationPoints(g)
			require.NoError(t, err)
			isCut := make(map[core.NodeHandle]bool, len(cut))
			for _, h := range cut {
				isCut[h] = true
			}

			for _, h := range g.NodeHandles() {
				clone := g.Clone()
				require.NoError(t, clone.RemoveNode(h))
				after, err := dfs.Components(clone)
				require.NoError(t, err)
				assert.Equal(t, isCut[h], after > base, "node %v", h)
			}
		})
	}
}

func TestArticulationPoints_SortedBySlot(t *testing.T) {
	fg, err := fixture.ByName("forest")
	require.NoError(t, err)
	g, err := fg.Build()
	require.NoError(t, err)

	hs, err := dfs.ArticulationPoints(g)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Less(t, hs[0].Index(), hs[1].Index())
}

func TestArticulationPoints_AfterRemoval(t *testing.T) {
	fg, err := fixture.ByName("two-cut")
	require.NoError(t, err)
	g, err := fg.Build()
	require.NoError(t, err)

	// Closing the 4-5 tail into the triangle removes both cut vertices.
	_, err = g.AddEdge("5", "2", 1)
	require.NoError(t, err)
	got, err := dfs.ArticulationPointNames(g)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, g.RemoveNodeByName("3"))
	got, err = dfs.ArticulationPointNames(g)
	require.NoError(t, err)
	assert.Empty(t, got) // 1-2-5-4-1 is a cycle

	require.NoError(t, g.RemoveEdge("1", "4", 0, true))
	got, err = dfs.ArticulationPointNames(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, got)
}

func TestArticulationPoints_EmptyAndNil(t *testing.T) {
	hs, err := dfs.ArticulationPoints(quietGraph())
	require.NoError(t, err)
	assert.Empty(t, hs)

	_, err = dfs.ArticulationPoints(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.ArticulationPointNames(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestArticulationPoints_Shapes(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want []string
	}{
		{"path", builder.Path(5), []string{"1", "2", "3"}},
		{"cycle", builder.Cycle(5), []string{}},
		{"star", builder.Star(6), []string{"0"}},
		{"wheel", builder.Wheel(6), []string{}},
		{"complete", builder.Complete(5), []string{}},
		{"ladder", builder.Grid(2, 4), []string{}},
		{"strip", builder.Grid(1, 4), []string{"0,1", "0,2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(quietOpts(), nil, tc.con, builder.Bundle(2))
			require.NoError(t, err)

			got, err := dfs.ArticulationPointNames(g)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestArticulationPoints_RandomMatchDefinition(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(quietOpts(),
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(14, 0.18))
		require.NoError(t, err)

		base, err := dfs.Components(g)
		require.NoError(t, err)
		cut, err := dfs.ArticulationPoints(g)
		require.NoError(t, err)
		isCut := make(map[core.NodeHandle]bool, len(cut))
		for _, h := range cut {
			isCut[h] = true
		}
		for _, h := range g.NodeHandles() {
			clone := g.Clone()
			require.NoError(t, clone.RemoveNode(h))
			after, err := dfs.Components(clone)
			require.NoError(t, err)
			assert.Equal(t, isCut[h], after > base, "seed %d node %v", seed, h)
		}
	}
}
