// Package matrix provides the dense linear-algebra kernels the coordinate
// algebra is built on: a row-major float64 Dense type, element-wise and
// product kernels (Add, Sub, Scale, Mul, Transpose, MatVec), Doolittle LU
// factorization with inversion by triangular solves, and a symmetric Jacobi
// eigen-decomposition.
//
// All kernels validate fail-fast and return package sentinels matched via
// errors.Is; none panic on user input and none mutate their operands. Loop
// orders are fixed, so results are deterministic for identical inputs.
//
// LU is intentionally non-pivoting: a zero pivot reports ErrSingular rather
// than reordering rows, which keeps inversion deterministic. Callers holding
// ill-conditioned matrices should detect that upstream.
package matrix
