// SPDX-License-Identifier: MIT

// Package matrix: domain types used by adapters and dense operations.
// This file contains the Matrix interface and the adjacency result type.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// AdjacencyMatrix is the simple weighted view of a multigraph.
//
// Rows and Dense hold the same values: Rows as nested slices, Dense as the
// row-major numeric type consumed by Eigen/Eigenvals. IndexToName and
// NameToIndex are the snapshot of node order used to build both.
type AdjacencyMatrix struct {
	Rows        [][]float64
	Dense       *Dense
	IndexToName map[int]string
	NameToIndex map[string]int
}

// Order returns the matrix dimension (number of nodes in the snapshot).
func (am *AdjacencyMatrix) Order() int { return len(am.Rows) }
