// Package matrix derives linear-algebra views of a core.Graph.
//
// The matrix package provides:
//
//   - ConvertToAdjMatrix: the simple weighted adjacency matrix of a
//     multigraph (parallel edges overwrite, last edge wins), together with
//     the index ↔ name maps of the snapshot it was built from.
//   - Dense: a row-major float64 matrix whose accessors return errors
//     instead of panicking.
//   - Eigen: a Jacobi rotation solver for symmetric matrices.
//   - Eigenvals: the two-way EigenResult (ascending real eigenvalues, or
//     ErrNonRealEigenvalues) used on adjacency matrices.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric).
//
// Matrices are best for small or dense graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
//
// See the examples in this package for usage patterns.
package matrix
