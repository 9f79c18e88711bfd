package matrix

import "errors"

var (
	// ErrBadShape indicates a requested shape with non-positive rows or cols.
	ErrBadShape = errors.New("matrix: invalid shape")
	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
	// ErrShapeMismatch indicates incompatible operand dimensions, e.g. Add
	// over different shapes or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
	// ErrNonSquare indicates a square matrix was required but not given.
	ErrNonSquare = errors.New("matrix: matrix is not square")
	// ErrSingular indicates a zero pivot during LU factorization/inversion.
	ErrSingular = errors.New("matrix: singular matrix")
	// ErrNotSymmetric indicates the symmetry tolerance was violated where a
	// symmetric matrix is required (Eigen).
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric within eps")
	// ErrEigenFailed indicates the Jacobi sweeps did not converge within the
	// iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
	// ErrRagged indicates FromRows received rows of differing lengths.
	ErrRagged = errors.New("matrix: ragged rows")
)
