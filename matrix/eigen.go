package matrix

import (
	"fmt"
	"math"
)

const (
	// DefaultEigenTol is the convergence threshold for Eigen's Jacobi sweeps.
	DefaultEigenTol = 1e-10
	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 300
)

// validateSymmetric reports ErrNotSymmetric unless |m[i,j]-m[j,i]| <= tol
// everywhere. Requires a square, non-nil m.
func validateSymmetric(m *Dense, tol float64) error {
	if err := validateSquare(m); err != nil {
		return err
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrNotSymmetric)
			}
		}
	}

	return nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi rotations with a largest-off-diagonal pivot.
//
// Returns the eigenvalues (diagonal of the rotated matrix, unsorted) and a
// matrix whose columns are the corresponding eigenvectors. Fails with
// ErrNotSymmetric when symmetry is violated beyond tol, and ErrEigenFailed
// when the largest off-diagonal entry still exceeds tol after maxIter
// rotations. The input is never mutated.
//
// Pivot search is a fixed upper-triangle scan, so identical inputs rotate
// identically.
//
// Complexity: O(maxIter * n^2) for the scans plus O(n) per rotation.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := validateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	n := m.rows
	a := m.Clone()
	q, _ := Identity(n)

	for iter := 0; iter < maxIter; iter++ {
		// Locate the largest off-diagonal |a[p,q]|.
		maxOff, p, r := 0.0, 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app := a.data[p*n+p]
		arr := a.data[r*n+r]
		apr := a.data[p*n+r]

		// Rotation angle: theta = (arr-app)/(2*apr), t, then cos/sin.
		theta := (arr - app) / (2 * apr)
		t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := a.data[i*n+p]
			air := a.data[i*n+r]
			nip := c*aip - s*air
			nir := s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = nip, nip
			a.data[i*n+r], a.data[r*n+i] = nir, nir
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// Accumulate the rotation into the eigenvector columns.
		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qir := q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Converged only if the remaining off-diagonal mass is below tol.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a.data[i*n+j]) >= tol {
				return nil, nil, fmt.Errorf("Eigen: %w", ErrEigenFailed)
			}
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
