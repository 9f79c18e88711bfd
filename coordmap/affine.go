package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/coords"
	"github.com/spatialref/coordspace/matrix"
)

// Affine is a coordinate transform represented exactly by a homogeneous
// matrix [[A, b], [0, 1]] of shape (output dim + 1) x (input dim + 1).
// Evaluation computes A*x + b; the inverse, when the matrix is
// invertible, is matrix inversion.
//
// An Affine owns its matrix exclusively — construction deep-copies the
// argument and Matrix returns a clone, so no caller can mutate a
// transform after the fact.
type Affine struct {
	in, out coords.System
	hom     *matrix.Dense // homogeneous matrix, deep-owned
	kernel  affineKernel
}

// NewAffine builds an Affine from a homogeneous matrix and the coordinate
// systems it connects.
//
// The matrix shape must be exactly (out.Dim()+1, in.Dim()+1), else
// ErrAffineShape; its last row must be [0, ..., 0, 1], else
// ErrNotHomogeneous. The precisions of both systems and of the float64
// matrix carrier are unified via coords.Promote, and the systems held by
// the result are rebuilt with the promoted precision — equal to the
// originals in axis names and label, not necessarily in precision.
func NewAffine(hom *matrix.Dense, in, out coords.System) (*Affine, error) {
	if hom == nil {
		return nil, fmt.Errorf("NewAffine: %w", ErrNilFunction)
	}
	wantR, wantC := out.Dim()+1, in.Dim()+1
	if hom.Rows() != wantR || hom.Cols() != wantC {
		return nil, fmt.Errorf("NewAffine: matrix %dx%d, want %dx%d: %w",
			hom.Rows(), hom.Cols(), wantR, wantC, ErrAffineShape)
	}
	last, _ := hom.Row(hom.Rows() - 1)
	for j, v := range last {
		want := 0.0
		if j == len(last)-1 {
			want = 1.0
		}
		if v != want {
			return nil, fmt.Errorf("NewAffine: %w", ErrNotHomogeneous)
		}
	}

	// The matrix carrier is float64, so the unified precision is the
	// promotion of both systems with Float64.
	prec, err := coords.Promote(in.Precision(), out.Precision(), coords.Float64)
	if err != nil {
		return nil, fmt.Errorf("NewAffine: %w", err)
	}
	pin, err := in.WithPrecision(prec)
	if err != nil {
		return nil, fmt.Errorf("NewAffine: %w", err)
	}
	pout, err := out.WithPrecision(prec)
	if err != nil {
		return nil, fmt.Errorf("NewAffine: %w", err)
	}

	own := hom.Clone()

	return &Affine{in: pin, out: pout, hom: own, kernel: newAffineKernel(own)}, nil
}

// FromMatrix builds an Affine from axis names and a homogeneous matrix,
// labelling the systems "input" and "output". Fails with ErrAxisCount when
// the matrix shape disagrees with the axis-name counts, and propagates
// NewAffine validation.
func FromMatrix(inNames, outNames []string, hom *matrix.Dense) (*Affine, error) {
	if hom == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilFunction)
	}
	if hom.Rows() != len(outNames)+1 || hom.Cols() != len(inNames)+1 {
		return nil, fmt.Errorf("FromMatrix: matrix %dx%d does not agree with %d input and %d output names: %w",
			hom.Rows(), hom.Cols(), len(inNames), len(outNames), ErrAxisCount)
	}
	in, err := coords.NewSystem(inNames, "input", coords.Float64)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	out, err := coords.NewSystem(outNames, "output", coords.Float64)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return NewAffine(hom, in, out)
}

// FromLinear builds an Affine from a linear block A and translation b —
// the (A, b) pair form of FromMatrix. Fails with ErrAxisCount when A's
// shape or b's length disagrees with the axis-name counts.
func FromLinear(inNames, outNames []string, linear *matrix.Dense, translation []float64) (*Affine, error) {
	if linear == nil {
		return nil, fmt.Errorf("FromLinear: %w", ErrNilFunction)
	}
	if linear.Rows() != len(outNames) || linear.Cols() != len(inNames) || len(translation) != len(outNames) {
		return nil, fmt.Errorf("FromLinear: block %dx%d with %d translations does not agree with %d input and %d output names: %w",
			linear.Rows(), linear.Cols(), len(translation), len(inNames), len(outNames), ErrAxisCount)
	}
	hom, _ := matrix.NewDense(linear.Rows()+1, linear.Cols()+1)
	for i := 0; i < linear.Rows(); i++ {
		row, _ := linear.Row(i)
		for j, v := range row {
			_ = hom.Set(i, j, v)
		}
		_ = hom.Set(i, linear.Cols(), translation[i])
	}
	_ = hom.Set(linear.Rows(), linear.Cols(), 1)

	return FromMatrix(inNames, outNames, hom)
}

// FromStartStep builds the grid-spacing transform diag(step)*x + start.
// Input and output must have the same axis count, else ErrAxisCount.
func FromStartStep(inNames, outNames []string, start, step []float64) (*Affine, error) {
	n := len(inNames)
	if len(outNames) != n || len(start) != n || len(step) != n {
		return nil, fmt.Errorf("FromStartStep: %d input names, %d output names, %d starts, %d steps: %w",
			n, len(outNames), len(start), len(step), ErrAxisCount)
	}
	block, err := matrix.Diag(step)
	if err != nil {
		return nil, fmt.Errorf("FromStartStep: %w", err)
	}

	return FromLinear(inNames, outNames, block, start)
}

// IdentityTransform builds an identity Affine with the same axis names on
// both sides, labelled "input" and "output".
func IdentityTransform(names []string) (*Affine, error) {
	start := make([]float64, len(names))
	step := make([]float64, len(names))
	for i := range step {
		step[i] = 1
	}

	return FromStartStep(names, names, start, step)
}

// Input returns the input coordinate system (precision-promoted).
func (a *Affine) Input() coords.System { return a.in }

// Output returns the output coordinate system (precision-promoted).
func (a *Affine) Output() coords.System { return a.out }

// Matrix returns a clone of the homogeneous matrix.
func (a *Affine) Matrix() *matrix.Dense { return a.hom.Clone() }

// Linear returns a clone of the linear block A.
func (a *Affine) Linear() *matrix.Dense { return a.kernel.linear.Clone() }

// Translation returns a copy of the translation vector b.
func (a *Affine) Translation() []float64 {
	out := make([]float64, len(a.kernel.translation))
	copy(out, a.kernel.translation)

	return out
}

// Eval validates pts against the input system, applies A*x + b, and
// validates the result against the output system.
func (a *Affine) Eval(pts [][]float64) ([][]float64, error) {
	return evalThrough(a.in, a.out, a.kernel, pts)
}

// EvalPoint evaluates a single point, promoted to a one-row batch.
func (a *Affine) EvalPoint(pt []float64) ([]float64, error) {
	return evalPointThrough(a, pt)
}

// Inverse returns the Affine with the inverted matrix and swapped
// systems, or (nil, false) when the matrix is singular. A missing inverse
// is an expected outcome for degenerate affines, not an error.
func (a *Affine) Inverse() (Transform, bool) {
	inv, err := matrix.Inverse(a.hom)
	if err != nil {
		return nil, false
	}
	out, err := NewAffine(inv, a.out, a.in)
	if err != nil {
		return nil, false
	}

	return out, true
}

// Copy returns a new Affine over a deep copy of the matrix, so mutating
// one transform's clone can never reach the other.
func (a *Affine) Copy() *Affine {
	cp, _ := NewAffine(a.hom.Clone(), a.in, a.out)

	return cp
}

// String implements fmt.Stringer.
func (a *Affine) String() string {
	return fmt.Sprintf("Affine(\n   matrix=\n%s   input=%s,\n   output=%s\n)", a.hom, a.in, a.out)
}

func (a *Affine) forward() Evaluator { return a.kernel }

// backward returns the inverse kernel, or nil for a singular matrix.
func (a *Affine) backward() Evaluator {
	inv, err := matrix.Inverse(a.hom)
	if err != nil {
		return nil
	}

	return newAffineKernel(inv)
}

// ReorderedInput returns a transform whose input axes are permuted per
// order; see the package-level ReorderedInput.
func (a *Affine) ReorderedInput(order Order, name string) (Transform, error) {
	return ReorderedInput(a, order, name)
}

// ReorderedOutput returns a transform whose output axes are permuted per
// order; see the package-level ReorderedOutput.
func (a *Affine) ReorderedOutput(order Order, name string) (Transform, error) {
	return ReorderedOutput(a, order, name)
}

// RenamedInput returns a transform with a subset of input axes renamed;
// see the package-level RenamedInput.
func (a *Affine) RenamedInput(mapping map[string]string, name string) (Transform, error) {
	return RenamedInput(a, mapping, name)
}

// RenamedOutput returns a transform with a subset of output axes renamed;
// see the package-level RenamedOutput.
func (a *Affine) RenamedOutput(mapping map[string]string, name string) (Transform, error) {
	return RenamedOutput(a, mapping, name)
}
