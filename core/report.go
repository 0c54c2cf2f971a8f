// SPDX-License-Identifier: MIT
// File: report.go
// Role: Uniform logging + wrapping of not-found conditions.
// Policy:
//   - Detection sites log once at Warn and return the wrapped sentinel.
//   - Callers match with errors.Is; the message carries the operation and names.

package core

import "fmt"

// nodeNotFound logs a missing node and returns ErrNodeNotFound wrapped with context.
func (g *Graph) nodeNotFound(op, name string) error {
	g.logger.Warn("node does not exist", "op", op, "node", name)

	return fmt.Errorf("%s(%q): %w", op, name, ErrNodeNotFound)
}

// staleHandle logs an unresolvable node handle.
func (g *Graph) staleHandle(op string, h NodeHandle) error {
	g.logger.Warn("node handle does not resolve", "op", op, "handle", h.String())

	return fmt.Errorf("%s(%s): %w", op, h, ErrNodeNotFound)
}

// edgeNotFound logs a missing edge between u and v.
func (g *Graph) edgeNotFound(op, u, v string) error {
	g.logger.Warn("edge does not exist", "op", op, "u", u, "v", v)

	return fmt.Errorf("%s(%q, %q): %w", op, u, v, ErrEdgeNotFound)
}

// badParallelIndex logs an out-of-range parallel index.
func (g *Graph) badParallelIndex(op, u, v string, idx, count int) error {
	g.logger.Warn("parallel edge index out of range",
		"op", op, "u", u, "v", v, "index", idx, "count", count)

	return fmt.Errorf("%s(%q, %q, %d): %w", op, u, v, idx, ErrParallelIndex)
}
