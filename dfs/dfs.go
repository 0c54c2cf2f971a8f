// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Traversal runs on an explicit stack, so depth is bounded by memory rather
// than by the goroutine stack, and reads one consistent core snapshot.
//
// Complexity:
//
//   - Time:   O(V + E) plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/wmgraph/core"
)

// frame is one explicit-stack entry: a node and the position of the next
// neighbor to examine.
type frame struct {
	node   int
	depth  int
	cursor int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj   *adjacency  // snapshot adjacency
	opts  *DFSOptions // traversal options
	res   *DFSResult  // result collector
	stack *arraystack.Stack
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components in slot order; otherwise it starts
// only from the node bound to start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Snapshot, then resolve the root in single-source mode
	adj := buildAdjacency(g.Snapshot())
	root := -1
	if !dopts.FullTraversal {
		h, err := g.Handle(start)
		if err != nil {
			return nil, fmt.Errorf("dfs: start %q: %w", start, ErrStartNodeNotFound)
		}
		idx, ok := adj.index[h]
		if !ok {
			return nil, fmt.Errorf("dfs: start %q: %w", start, ErrStartNodeNotFound)
		}
		root = idx
	}

	// 4. Initialize result with capacity hint
	n := adj.order()
	res := &DFSResult{
		Order:   make([]core.NodeHandle, 0, n),
		Depth:   make(map[core.NodeHandle]int, n),
		Parent:  make(map[core.NodeHandle]core.NodeHandle, n),
		Visited: make(map[core.NodeHandle]bool, n),
	}
	w := &dfsWalker{adj: adj, opts: &dopts, res: res, stack: arraystack.New()}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for i := 0; i < n; i++ {
			if res.Visited[adj.handles[i]] {
				continue
			}
			if err := w.traverse(i); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(root); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = dopts.SkippedNeighbors

	return res, nil
}

// traverse runs one DFS tree rooted at index root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}
	w.stack.Clear()
	w.stack.Push(&frame{node: root})

	var (
		top  interface{}
		f    *frame
		next int
		h    core.NodeHandle
		err  error
	)
	for !w.stack.Empty() {
		top, _ = w.stack.Peek()
		f = top.(*frame)

		// Descend into the next admissible neighbor, if any.
		if f.cursor < len(w.adj.nbrs[f.node]) {
			next = w.adj.nbrs[f.node][f.cursor]
			f.cursor++
			h = w.adj.handles[next]

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(h) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[h] {
				continue
			}
			if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[h] = w.adj.handles[f.node]
			if err = w.enter(next, f.depth+1); err != nil {
				return err
			}
			w.stack.Push(&frame{node: next, depth: f.depth + 1})
			continue
		}

		// All neighbors explored: finish the node.
		w.stack.Pop()
		h = w.adj.handles[f.node]
		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(h); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %v: %w", h, err)
			}
		}
		w.res.Order = append(w.res.Order, h)
	}

	return nil
}

// enter marks node i discovered at depth and runs the pre-order hook.
func (w *dfsWalker) enter(i, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	h := w.adj.handles[i]
	w.res.Visited[h] = true
	w.res.Depth[h] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(h); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", h, err)
		}
	}

	return nil
}
