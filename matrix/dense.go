package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values. rows and cols fix the
// shape; data holds rows*cols elements, row by row.
type Dense struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols
}

// NewDense creates a rows x cols matrix initialized to zeros.
// Fails with ErrBadShape when either dimension is non-positive.
//
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a non-empty slice of equally sized rows.
// Fails with ErrBadShape on an empty input and ErrRagged when row lengths
// differ. The input is copied, never aliased.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrRagged)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n x n identity matrix.
// Fails with ErrBadShape when n is non-positive.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Diag returns a square matrix with d on the main diagonal.
// Fails with ErrBadShape on an empty d.
func Diag(d []float64) (*Dense, error) {
	m, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, fmt.Errorf("Diag: %w", ErrBadShape)
	}
	for i, v := range d {
		m.data[i*len(d)+i] = v
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// offset computes the flat index of (row, col) or reports ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At returns the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.offset(row, col)
	if err != nil {
		return 0, fmt.Errorf("At%w", err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.offset(row, col)
	if err != nil {
		return fmt.Errorf("Set%w", err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Fails with ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Clone returns a deep copy. Complexity: O(rows*cols).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// validateNotNil reports ErrNilMatrix for a nil operand.
func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape reports ErrShapeMismatch unless a and b agree on shape.
func validateSameShape(a, b *Dense) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}

	return nil
}

// validateSquare reports ErrNonSquare for a rectangular matrix.
func validateSquare(m *Dense) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}
