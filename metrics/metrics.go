// SPDX-License-Identifier: MIT

// Package metrics exposes graph catalog statistics as Prometheus gauges.
//
// The Collector reads the graph at scrape time, so exported values always
// reflect the current store without any write-path instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wmgraph/core"
	"github.com/katalvlaran/wmgraph/dfs"
)

const subsystem = "graph"

// Collector implements prometheus.Collector over one *core.Graph.
//
// Exported series (namespace ns):
//
//	<ns>_graph_order                number of live nodes
//	<ns>_graph_size                 number of live edges, parallels counted
//	<ns>_graph_total_weight         sum of all edge weights
//	<ns>_graph_articulation_points  number of cut vertices
type Collector struct {
	graph *core.Graph

	order        *prometheus.Desc
	size         *prometheus.Desc
	totalWeight  *prometheus.Desc
	articulation *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for g. An empty namespace yields
// unprefixed "graph_*" names.
func NewCollector(g *core.Graph, namespace string) *Collector {
	return &Collector{
		graph: g,
		order: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "order"),
			"Number of live nodes in the graph",
			nil, nil,
		),
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "size"),
			"Number of live edges in the graph, parallel edges counted",
			nil, nil,
		),
		totalWeight: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "total_weight"),
			"Sum of all edge weights",
			nil, nil,
		),
		articulation: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "articulation_points"),
			"Number of articulation points (cut vertices)",
			nil, nil,
		),
	}
}

// Describe sends the static descriptors of all four gauges.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.order
	ch <- c.size
	ch <- c.totalWeight
	ch <- c.articulation
}

// Collect reads the graph and emits one sample per gauge. Stats are taken
// under a single read lock; the articulation count runs on its own
// snapshot.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.graph == nil {
		ch <- prometheus.NewInvalidMetric(c.order, dfs.ErrGraphNil)
		return
	}

	st := c.graph.Stats()
	ch <- prometheus.MustNewConstMetric(c.order, prometheus.GaugeValue, float64(st.Order))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(st.Size))
	ch <- prometheus.MustNewConstMetric(c.totalWeight, prometheus.GaugeValue, st.TotalWeight)

	cut, err := dfs.ArticulationPoints(c.graph)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.articulation, err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.articulation, prometheus.GaugeValue, float64(len(cut)))
}

// NewRegistry returns a fresh registry with a Collector for g registered.
func NewRegistry(g *core.Graph, namespace string) (*prometheus.Registry, *Collector, error) {
	reg := prometheus.NewRegistry()
	c := NewCollector(g, namespace)
	if err := reg.Register(c); err != nil {
		return nil, nil, err
	}

	return reg, c, nil
}
