package matrix

import "fmt"

// LU computes the Doolittle factorization m = L*U with a unit diagonal on
// L and no pivoting. A zero pivot fails with ErrSingular; rectangular or
// nil input fails with ErrNonSquare / ErrNilMatrix.
//
// No pivoting is deliberate: identical inputs always factor identically,
// at the cost of rejecting some invertible matrices whose natural pivot
// order hits a zero. The homogeneous affine matrices this package serves
// are small and well-behaved.
//
// Complexity: O(n^3) time, O(n^2) memory.
func LU(m *Dense) (l, u *Dense, err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.rows
	l, _ = NewDense(n, n)
	u, _ = NewDense(n, n)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	for i := 0; i < n; i++ {
		// Row i of U.
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = m.data[i*n+j] - sum
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}
		// Column i of L.
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (m.data[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes m^-1 via LU factorization and per-basis-column
// triangular solves. Fails with ErrNilMatrix, ErrNonSquare, or ErrSingular
// when a zero pivot is met. The input is never mutated.
//
// Complexity: O(n^3) time, O(n^2) memory.
func Inverse(m *Dense) (*Dense, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := m.rows
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	x := make([]float64, n)

	for col := 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
