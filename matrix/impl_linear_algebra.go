// SPDX-License-Identifier: MIT

// Package matrix - spectral routines over symmetric matrices.
//
// Purpose:
//   - Eigen: Jacobi rotation solver returning eigenvalues and eigenvectors.
//   - Eigenvals: the result-typed entry point used on adjacency matrices.
//   - SpectralRadius: max |λ| over a computed spectrum.
//
// Determinism:
//   - Pivot search scans the upper triangle in row-major order; ties keep the
//     first maximum, so the rotation sequence is reproducible.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

const (
	// DefaultEigenTol is the off-diagonal threshold and symmetry tolerance
	// used by Eigenvals.
	DefaultEigenTol = 1e-10

	// minEigenIter is the rotation budget floor for tiny matrices.
	minEigenIter = 100

	// eigenIterPerEntry scales the rotation budget with n².
	eigenIterPerEntry = 50
)

// Operation tags for error wrapping.
const (
	opEigen     = "Eigen"
	opEigenvals = "Eigenvals"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EigenResult is the two-way outcome of Eigenvals.
// Exactly one of Values (Err == nil) or Err is meaningful.
type EigenResult struct {
	Values []float64
	Err    error
}

// OK reports whether the result carries eigenvalues.
func (r EigenResult) OK() bool { return r.Err == nil }

// toDense returns a private *Dense copy of m for in-place rotation.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// maxOffDiagonal returns the largest |A[i,j]| above the diagonal and its position.
func maxOffDiagonal(a *Dense) (maxOff float64, p, q int) {
	n := a.r
	var (
		i, j, base int
		off        float64
	)
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}

// Eigen performs the Jacobi eigenvalue decomposition of a symmetric matrix.
//
// Returns eigenvalues in diagonal order (not sorted) and Q whose columns are
// the matching eigenvectors, A = Q·diag(λ)·Qᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry from validation (tol
//     doubles as the symmetry tolerance).
//   - ErrEigenFailed if the off-diagonal mass is still ≥ tol after maxIter
//     rotations.
//
// Complexity: O(n²) per rotation; typically O(n³) total.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	qm, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i int
	for i = 0; i < n; i++ {
		qm.data[i*n+i] = 1.0
	}

	var (
		iter               int
		p, q               int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, q = maxOffDiagonal(a)
		if maxOff < tol || maxOff == NormZero {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[q*n+q]
		apq = a.data[p*n+q]

		// θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+q]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = s*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = qm.data[i*n+p]
			qiq = qm.data[i*n+q]
			qm.data[i*n+p] = c*qip - s*qiq
			qm.data[i*n+q] = s*qip + c*qiq
		}
	}

	if maxOff, _, _ = maxOffDiagonal(a); maxOff >= tol && maxOff > NormZero {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, qm, nil
}

// eigenBudget is the rotation budget Eigenvals grants an n×n input.
func eigenBudget(n int) int {
	if b := eigenIterPerEntry * n * n; b > minEigenIter {
		return b
	}

	return minEigenIter
}

// scaledTol grows DefaultEigenTol with the largest |entry| so large weights
// do not stall convergence on rounding noise.
func scaledTol(m Matrix) float64 {
	scale := 1.0
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err == nil && math.Abs(v) > scale {
				scale = math.Abs(v)
			}
		}
	}

	return DefaultEigenTol * scale
}

// Eigenvals computes the eigenvalues of m, sorted ascending.
//
// A symmetric real matrix always has a real spectrum, so adjacency matrices
// produced by ConvertToAdjMatrix always succeed. Any other failure (nil or
// non-square input, asymmetry, non-convergence) yields Err wrapping
// ErrNonRealEigenvalues together with the underlying cause.
func Eigenvals(m Matrix) EigenResult {
	if err := ValidateNotNil(m); err != nil {
		return EigenResult{Err: fmt.Errorf("%s: %w: %w", opEigenvals, ErrNonRealEigenvalues, err)}
	}
	vals, _, err := Eigen(m, scaledTol(m), eigenBudget(m.Rows()))
	if err != nil {
		return EigenResult{Err: fmt.Errorf("%s: %w: %w", opEigenvals, ErrNonRealEigenvalues, err)}
	}
	sort.Float64s(vals)

	return EigenResult{Values: vals}
}

// SpectralRadius returns max |λ| over values, or 0 for an empty spectrum.
func SpectralRadius(values []float64) float64 {
	r := NormZero
	for _, v := range values {
		if a := math.Abs(v); a > r {
			r = a
		}
	}

	return r
}
