// SPDX-License-Identifier: MIT
package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/internal/fixture"
)

func buildFixture(t *testing.T, name string) *core.Graph {
	t.Helper()
	fg, err := fixture.ByName(name)
	require.NoError(t, err)
	g, err := fg.Build()
	require.NoError(t, err)

	return g
}

func TestCollector_Exposition(t *testing.T) {
	g := buildFixture(t, "two-cut")
	c := NewCollector(g, "wmgraph")

	expected := `
# HELP wmgraph_graph_articulation_points Number of articulation points (cut vertices)
# TYPE wmgraph_graph_articulation_points gauge
wmgraph_graph_articulation_points 2
# HELP wmgraph_graph_order Number of live nodes in the graph
# TYPE wmgraph_graph_order gauge
wmgraph_graph_order 5
# HELP wmgraph_graph_size Number of live edges in the graph, parallel edges counted
# TYPE wmgraph_graph_size gauge
wmgraph_graph_size 5
# HELP wmgraph_graph_total_weight Sum of all edge weights
# TYPE wmgraph_graph_total_weight gauge
wmgraph_graph_total_weight 5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
	assert.Equal(t, 4, testutil.CollectAndCount(c))
}

func TestCollector_TracksMutations(t *testing.T) {
	g := buildFixture(t, "parallel-bridge")
	reg, _, err := NewRegistry(g, "")
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 3.0, gaugeValue(t, families, "graph_size"))
	assert.Equal(t, 6.0, gaugeValue(t, families, "graph_total_weight"))
	assert.Equal(t, 1.0, gaugeValue(t, families, "graph_articulation_points"))

	require.NoError(t, g.RemoveEdge("a", "b", 0, true))
	families, err = reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 1.0, gaugeValue(t, families, "graph_size"))
	assert.Equal(t, 3.0, gaugeValue(t, families, "graph_total_weight"))
	assert.Equal(t, 0.0, gaugeValue(t, families, "graph_articulation_points"))
}

func TestCollector_NilGraph(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(nil, "x")))
	_, err := reg.Gather()
	assert.Error(t, err)
}

func TestNewRegistry_DuplicateNamespaceFails(t *testing.T) {
	g := core.NewGraph()
	reg, _, err := NewRegistry(g, "dup")
	require.NoError(t, err)
	assert.Error(t, reg.Register(NewCollector(g, "dup")))
}

func gaugeValue(t *testing.T, families []*dto.MetricFamily, name string) float64 {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)

		return mf.GetMetric()[0].GetGauge().GetValue()
	}
	t.Fatalf("metric %q not gathered", name)

	return 0
}
