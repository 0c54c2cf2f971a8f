// SPDX-License-Identifier: MIT
// Package matrix - simple weighted adjacency view of a core multigraph.
//
// Deliverables:
//   1) One row/column per live node, in node slot order.
//   2) Symmetric fill: every edge writes [u][v] and [v][u].
//   3) Parallel edges overwrite; the last edge in edge slot order wins.
//   4) Empty graph → 0×0 matrix, empty index maps.
//
// The conversion reads one consistent core snapshot, so concurrent writers
// never produce a matrix that mixes two graph states.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/wmgraph/core"
)

const opConvert = "ConvertToAdjMatrix"

// ConvertToAdjMatrix builds the order×order weighted adjacency matrix of g.
//
// Implementation:
//   - Stage 1: validate input graph (ErrGraphNil).
//   - Stage 2: take a core.View; assign index i to the i-th live node.
//   - Stage 3: allocate zeros, then for each edge write w at (u,v) and (v,u).
//   - Stage 4: mirror the rows into a Dense for the spectral routines.
//
// Notes:
//   - A self-loop writes the diagonal once.
//   - Under core.WithNameRebinding two nodes may share a name; NameToIndex
//     then holds the later index while IndexToName keeps both.
//
// Complexity: O(V² + E) time, O(V²) space.
func ConvertToAdjMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opConvert, ErrGraphNil)
	}

	view := g.Snapshot()
	n := len(view.Handles)
	pos := view.IndexOf()

	am := &AdjacencyMatrix{
		Rows:        make([][]float64, n),
		IndexToName: make(map[int]string, n),
		NameToIndex: make(map[string]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		am.Rows[i] = make([]float64, n)
		am.IndexToName[i] = view.Nodes[i].Name
		am.NameToIndex[view.Nodes[i].Name] = i
	}

	var (
		e      core.Edge
		iu, iv int
		okU    bool
		okV    bool
	)
	for _, e = range view.Edges {
		iu, okU = pos[e.U]
		iv, okV = pos[e.V]
		if !okU || !okV {
			// Unreachable for a consistent snapshot.
			return nil, matrixErrorf(opConvert, fmt.Errorf("edge %v-%v: %w", e.U, e.V, ErrOutOfRange))
		}
		am.Rows[iu][iv] = e.Weight
		am.Rows[iv][iu] = e.Weight
	}

	dense, err := NewDenseFromRows(am.Rows)
	if err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	am.Dense = dense

	return am, nil
}

// Weight returns the matrix entry for the named pair (0 when unconnected).
//
// Errors:
//   - ErrOutOfRange if either name is not part of the snapshot.
func (am *AdjacencyMatrix) Weight(u, v string) (float64, error) {
	iu, ok := am.NameToIndex[u]
	if !ok {
		return 0, fmt.Errorf("Weight(%q): %w", u, ErrOutOfRange)
	}
	iv, ok := am.NameToIndex[v]
	if !ok {
		return 0, fmt.Errorf("Weight(%q): %w", v, ErrOutOfRange)
	}

	return am.Rows[iu][iv], nil
}

// Neighbors returns the names whose entry in u's row is non-zero, in index
// order. An edge of weight 0 is indistinguishable from no edge here.
func (am *AdjacencyMatrix) Neighbors(u string) ([]string, error) {
	iu, ok := am.NameToIndex[u]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", u, ErrOutOfRange)
	}
	out := make([]string, 0)
	for j, w := range am.Rows[iu] {
		if w != 0 {
			out = append(out, am.IndexToName[j])
		}
	}

	return out, nil
}
