// SPDX-License-Identifier: MIT
// Package core defines the weighted undirected multigraph store: Node, Edge,
// their arena handles, the Graph type, sentinel errors and the NewGraph
// constructor.
//
// Storage is arena-style. Nodes and edges live in dense slot slices and are
// addressed by {slot, generation} handles. Removal frees the slot onto a
// free list; reuse bumps the generation so stale handles never resolve to a
// different logical item.
//
// Errors:
//
//	ErrEmptyName       - node name is the empty string.
//	ErrDuplicateNode   - node name already bound (unless WithNameRebinding).
//	ErrNodeNotFound    - referenced node name or handle does not exist.
//	ErrEdgeNotFound    - no edge exists between the given endpoints.
//	ErrParallelIndex   - parallel-edge index outside the pair's edge list.
//	ErrLoopNotAllowed  - self-loop while loops are disabled.
//	ErrBadWeight       - NaN or ±Inf edge weight.
package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node name is the empty string.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates that a node with the same name is already registered.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrParallelIndex indicates a parallel-edge index outside [0, ParallelCount).
	ErrParallelIndex = errors.New("core: parallel edge index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// NodeHandle is the stable arena address of a node.
//
// The zero value never refers to a live node: generations start at 1.
type NodeHandle struct {
	slot uint32
	gen  uint32
}

// Index returns the arena slot of the handle.
func (h NodeHandle) Index() int { return int(h.slot) }

// Generation returns the slot generation the handle was issued for.
func (h NodeHandle) Generation() uint32 { return h.gen }

// IsZero reports whether h is the zero handle.
func (h NodeHandle) IsZero() bool { return h.gen == 0 }

func (h NodeHandle) String() string { return fmt.Sprintf("n%d#%d", h.slot, h.gen) }

// EdgeHandle is the stable arena address of an edge.
type EdgeHandle struct {
	slot uint32
	gen  uint32
}

// Index returns the arena slot of the handle.
func (h EdgeHandle) Index() int { return int(h.slot) }

// IsZero reports whether h is the zero handle.
func (h EdgeHandle) IsZero() bool { return h.gen == 0 }

func (h EdgeHandle) String() string { return fmt.Sprintf("e%d#%d", h.slot, h.gen) }

// Spatial holds optional geographic attributes of a node.
type Spatial struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// Node represents a named vertex.
//
// OptimalWeightedDegree is the cached sum of incident edge weights, kept
// current by every mutation. Spatial is nil unless the node was created
// with AddNodeWithSpatial.
type Node struct {
	// Name is the externally visible identifier.
	Name string

	// OptimalWeightedDegree caches the sum of incident edge weights.
	OptimalWeightedDegree float64

	// Spatial is optional; nil when absent.
	Spatial *Spatial
}

// copyNode returns n with a private copy of its Spatial attributes.
func copyNode(n Node) Node {
	if n.Spatial != nil {
		sp := *n.Spatial
		n.Spatial = &sp
	}

	return n
}

// Edge is one undirected weighted connection. Parallel edges between the
// same pair are distinct Edge values with their own handles.
type Edge struct {
	U      NodeHandle
	V      NodeHandle
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the structured logger used to report not-found
// conditions. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNameRebinding restores the legacy AddNode behaviour: a duplicate name
// silently rebinds to the new node and the previous node stays in the
// graph, reachable only by handle.
func WithNameRebinding() GraphOption {
	return func(g *Graph) { g.rebindNames = true }
}

// WithCapacity preallocates arena space for the given node and edge counts.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodes = make([]nodeSlot, 0, nodes)
			g.names = make(map[string]NodeHandle, nodes)
		}
		if edges > 0 {
			g.edges = make([]edgeSlot, 0, edges)
		}
	}
}

// Graph is an undirected weighted multigraph.
//
// pairs[(a,b)] and pairs[(b,a)] hold the same edge handles in the same order,
// so parallel index i addresses the same edge from either direction.
// mu is a single-writer boundary: mutations take the write lock, queries the
// read lock. Unexported helpers assume the caller holds mu.
type Graph struct {
	mu     sync.RWMutex
	logger *slog.Logger

	// Configuration flags
	allowLoops  bool // allow self-loops
	rebindNames bool // legacy duplicate-name rebinding

	// Arenas
	nodes     []nodeSlot
	freeNodes []uint32
	edges     []edgeSlot
	freeEdges []uint32
	nodeCount int
	edgeCount int

	// Indexes
	names map[string]NodeHandle
	pairs map[pairKey][]EdgeHandle
}

// NewGraph creates an empty Graph. By default loops are rejected, duplicate
// names are rejected and logging goes to slog.Default().
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger: slog.Default(),
		names:  make(map[string]NodeHandle),
		pairs:  make(map[pairKey][]EdgeHandle),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	Order       int     // live nodes
	Size        int     // live edges, each parallel instance counted
	Pairs       int     // unordered node pairs with at least one edge
	TotalWeight float64 // sum of all edge weights
	FreeNodes   int     // recyclable node slots
	FreeEdges   int     // recyclable edge slots
}
