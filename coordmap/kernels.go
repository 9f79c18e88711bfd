package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/matrix"
)

// affineKernel evaluates y = A*x + b row by row. It owns its linear block
// and translation vector; both are treated as immutable.
type affineKernel struct {
	linear      *matrix.Dense // outDim x inDim block
	translation []float64     // length outDim
}

// newAffineKernel splits a homogeneous matrix [[A, b], [0, 1]] into its
// linear block and translation column.
func newAffineKernel(hom *matrix.Dense) affineKernel {
	outDim := hom.Rows() - 1
	inDim := hom.Cols() - 1
	linear, _ := matrix.NewDense(outDim, inDim)
	translation := make([]float64, outDim)
	for i := 0; i < outDim; i++ {
		row, _ := hom.Row(i)
		for j := 0; j < inDim; j++ {
			_ = linear.Set(i, j, row[j])
		}
		translation[i] = row[inDim]
	}

	return affineKernel{linear: linear, translation: translation}
}

// Apply maps each row x to A*x + b.
func (k affineKernel) Apply(pts [][]float64) ([][]float64, error) {
	out := make([][]float64, len(pts))
	for r, row := range pts {
		if len(row) != k.linear.Cols() {
			return nil, fmt.Errorf("affine kernel: row %d has %d values, want %d: %w",
				r, len(row), k.linear.Cols(), ErrFunctionShape)
		}
		y, err := matrix.MatVec(k.linear, row)
		if err != nil {
			return nil, err
		}
		for i, b := range k.translation {
			y[i] += b
		}
		out[r] = y
	}

	return out, nil
}

// chainKernel applies its steps in order: steps[0] first, then steps[1],
// and so on. It owns the step list; the steps themselves are shared.
type chainKernel struct {
	steps []Evaluator
}

// Apply threads the batch through every step.
func (k chainKernel) Apply(pts [][]float64) ([][]float64, error) {
	cur := pts
	var err error
	for _, step := range k.steps {
		if cur, err = step.Apply(cur); err != nil {
			return nil, err
		}
	}

	return cur, nil
}

// blockKernel evaluates a block-diagonal product: each part consumes its
// own contiguous column slice of the input batch, and the per-part outputs
// are concatenated column-wise in order.
type blockKernel struct {
	parts []Transform
}

// Apply slices the batch per part, evaluates each part with full
// input/output validation, and stitches the results back together.
func (k blockKernel) Apply(pts [][]float64) ([][]float64, error) {
	out := make([][]float64, len(pts))
	for r := range out {
		out[r] = []float64{}
	}
	off := 0
	for _, part := range k.parts {
		dim := part.Input().Dim()
		sub := make([][]float64, len(pts))
		for r, row := range pts {
			if off+dim > len(row) {
				return nil, fmt.Errorf("block kernel: row %d has %d values, need %d: %w",
					r, len(row), off+dim, ErrFunctionShape)
			}
			sub[r] = row[off : off+dim]
		}
		res, err := part.Eval(sub)
		if err != nil {
			return nil, err
		}
		for r := range out {
			out[r] = append(out[r], res[r]...)
		}
		off += dim
	}

	return out, nil
}

// zeroBatch builds a rows x dim batch of zero vectors, the synthetic input
// used to probe a freshly constructed Map.
func zeroBatch(rows, dim int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, dim)
	}

	return out
}
