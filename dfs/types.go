// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/wmgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// ArticulationPoints or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node name
	// is not bound to a live node.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS before the next node is entered.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(h core.NodeHandle) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(h core.NodeHandle) error

	// MaxDepth, if non-negative, limits the depth of discovered nodes.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(h core.NodeHandle) bool

	// FullTraversal, if true, runs DFS from every unvisited node in slot
	// order, covering disconnected components (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(h core.NodeHandle) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(h core.NodeHandle) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors; if fn(h) == false the neighbor is
// skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(h core.NodeHandle) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal; the start name is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeHandle

	// Depth maps each node to its tree distance (#edges) from its root.
	Depth map[core.NodeHandle]int

	// Parent maps each node to the node it was first discovered from.
	// Roots do not appear in this map.
	Parent map[core.NodeHandle]core.NodeHandle

	// Visited flags which nodes were reached during the traversal.
	Visited map[core.NodeHandle]bool

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected,
	// aggregated across all trees.
	SkippedNeighbors int
}

// Roots returns the number of DFS trees in r (visited nodes without a parent).
func (r *DFSResult) Roots() int {
	return len(r.Visited) - len(r.Parent)
}
