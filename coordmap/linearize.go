package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/matrix"
)

// DefaultLinearizeStep is the forward-difference step used when no
// WithStep option is given.
const DefaultLinearizeStep = 1.0

// LinearizeOption configures Linearize.
type LinearizeOption func(*linearizeOptions)

type linearizeOptions struct {
	step   float64
	origin []float64
}

// WithStep sets the forward-difference step size.
func WithStep(step float64) LinearizeOption {
	return func(o *linearizeOptions) { o.step = step }
}

// WithOrigin sets the point the function is linearized around. Defaults
// to the zero vector.
func WithOrigin(origin []float64) LinearizeOption {
	return func(o *linearizeOptions) { o.origin = append([]float64(nil), origin...) }
}

// Linearize estimates the homogeneous matrix of the affine function best
// approximating fn near the origin, by forward differences: column i of
// the linear block A is (fn(origin + step*e_i) - fn(origin)) / step, the
// translation column is fn(origin) - A*origin so the matrix agrees with fn
// at the origin itself, and the homogeneous corner is 1. The result has
// shape (output dim + 1) x (ndimIn + 1), with the output dimension
// discovered from fn's value at the origin.
//
// The estimate is exact — not merely close — whenever fn is itself
// affine, whatever the step and origin, since an affine function has no
// higher-order terms. For anything else it is a local first-order
// approximation.
//
// Fails with ErrNilFunction, ErrBadDim (non-positive ndimIn), ErrBadStep
// (zero step), ErrBadOrigin (origin length differs from ndimIn), or
// ErrFunctionShape when fn returns inconsistently shaped batches;
// evaluation errors from fn propagate unchanged.
func Linearize(fn Evaluator, ndimIn int, opts ...LinearizeOption) (*matrix.Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("Linearize: %w", ErrNilFunction)
	}
	if ndimIn <= 0 {
		return nil, fmt.Errorf("Linearize: ndimIn=%d: %w", ndimIn, ErrBadDim)
	}
	o := linearizeOptions{step: DefaultLinearizeStep}
	for _, opt := range opts {
		opt(&o)
	}
	if o.step == 0 {
		return nil, fmt.Errorf("Linearize: %w", ErrBadStep)
	}
	if o.origin == nil {
		o.origin = make([]float64, ndimIn)
	}
	if len(o.origin) != ndimIn {
		return nil, fmt.Errorf("Linearize: origin length %d, ndimIn %d: %w", len(o.origin), ndimIn, ErrBadOrigin)
	}

	// Value at the origin: the translation column and the output dim.
	base, err := fn.Apply([][]float64{o.origin})
	if err != nil {
		return nil, fmt.Errorf("Linearize: %w", err)
	}
	if len(base) != 1 {
		return nil, fmt.Errorf("Linearize: %d rows for 1 input: %w", len(base), ErrFunctionShape)
	}
	b := base[0]
	ndimOut := len(b)

	// One stepped point per input axis: origin + step*e_i.
	stepped := make([][]float64, ndimIn)
	for i := range stepped {
		row := append([]float64(nil), o.origin...)
		row[i] += o.step
		stepped[i] = row
	}
	y1, err := fn.Apply(stepped)
	if err != nil {
		return nil, fmt.Errorf("Linearize: %w", err)
	}
	if len(y1) != ndimIn {
		return nil, fmt.Errorf("Linearize: %d rows for %d inputs: %w", len(y1), ndimIn, ErrFunctionShape)
	}

	hom, err := matrix.NewDense(ndimOut+1, ndimIn+1)
	if err != nil {
		return nil, fmt.Errorf("Linearize: %w", err)
	}
	for i := 0; i < ndimIn; i++ {
		if len(y1[i]) != ndimOut {
			return nil, fmt.Errorf("Linearize: row %d has %d values, want %d: %w",
				i, len(y1[i]), ndimOut, ErrFunctionShape)
		}
		for r := 0; r < ndimOut; r++ {
			_ = hom.Set(r, i, (y1[i][r]-b[r])/o.step)
		}
	}
	// Translation agrees with fn at the origin: b - A*origin.
	for r := 0; r < ndimOut; r++ {
		tr := b[r]
		for i := 0; i < ndimIn; i++ {
			v, _ := hom.At(r, i)
			tr -= v * o.origin[i]
		}
		_ = hom.Set(r, ndimIn, tr)
	}
	_ = hom.Set(ndimOut, ndimIn, 1)

	return hom, nil
}
