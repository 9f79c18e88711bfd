package matrix

import "fmt"

// addSub computes out = a + sign*b over identically shaped operands.
// Shared by Add and Sub so validation and the flat loop live once.
func addSub(a, b *Dense, sign float64, op string) (*Dense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += sign * b.data[i]
	}

	return out, nil
}

// Add returns the element-wise sum a + b as a fresh Dense.
// Fails with ErrNilMatrix or ErrShapeMismatch.
//
// Complexity: O(rows*cols).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, "Add") }

// Sub returns the element-wise difference a - b as a fresh Dense.
// Fails with ErrNilMatrix or ErrShapeMismatch.
//
// Complexity: O(rows*cols).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, "Sub") }

// Scale returns alpha * m as a fresh Dense. Fails with ErrNilMatrix.
//
// Complexity: O(rows*cols).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, fmt.Errorf("Scale: %w", err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Mul returns the matrix product a x b as a fresh Dense.
// Fails with ErrNilMatrix, or ErrShapeMismatch when a.Cols != b.Rows.
//
// Loop order is i-k-j over row-major storage; zero a[i,k] entries are
// skipped, which matters for the mostly-zero permutation and homogeneous
// matrices the coordinate algebra multiplies.
//
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	for i := 0; i < a.rows; i++ {
		baseA := i * a.cols
		baseO := i * b.cols
		for k := 0; k < a.cols; k++ {
			av := a.data[baseA+k]
			if av == 0 {
				continue
			}
			baseB := k * b.cols
			for j := 0; j < b.cols; j++ {
				out.data[baseO+j] += av * b.data[baseB+j]
			}
		}
	}

	return out, nil
}

// Transpose returns m with rows and columns swapped as a fresh Dense.
// Fails with ErrNilMatrix.
//
// Complexity: O(rows*cols).
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := NewDense(m.cols, m.rows)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[base+j]
		}
	}

	return out, nil
}

// MatVec returns y = m * x for a column vector x of length m.Cols.
// Fails with ErrNilMatrix, or ErrShapeMismatch on a wrong-length x.
//
// Complexity: O(rows*cols).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if len(x) != m.cols {
		return nil, fmt.Errorf("MatVec: vector length %d, matrix %dx%d: %w", len(x), m.rows, m.cols, ErrShapeMismatch)
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		acc := 0.0
		for j, xv := range x {
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
