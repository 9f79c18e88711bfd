package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/matrix"
)

// allAffine reports whether every transform is the Affine variant, and
// returns the concrete values when so.
func allAffine(ts []Transform) ([]*Affine, bool) {
	affs := make([]*Affine, len(ts))
	for i, t := range ts {
		a, ok := t.(*Affine)
		if !ok {
			return nil, false
		}
		affs[i] = a
	}

	return affs, true
}

// Compose returns the right-to-left composition of the given transforms:
// the result applies ts[len-1] first and ts[0] last, so its input system
// is ts[len-1].Input() and its output system is ts[0].Output().
//
// Adjacent transforms must match at the seam — ts[i].Input() must name the
// same axes, in the same order, as ts[i+1].Output() — else Compose fails
// with ErrSeamMismatch describing both systems. An empty operand list
// fails with ErrNoTransforms.
//
// When every operand is an Affine the result is an Affine whose matrix is
// the exact product of the operand matrices; composition of affine maps
// is affine, so no numeric approximation is involved. Otherwise the
// result is a Map chaining the forward functions, whose inverse exists
// only if every operand is invertible.
func Compose(ts ...Transform) (Transform, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("Compose: %w", ErrNoTransforms)
	}
	for i := 0; i < len(ts)-1; i++ {
		if !ts[i].Input().Same(ts[i+1].Output()) {
			return nil, fmt.Errorf("Compose: seam %d: input=%s, output=%s: %w",
				i, ts[i].Input(), ts[i+1].Output(), ErrSeamMismatch)
		}
	}
	in := ts[len(ts)-1].Input()
	out := ts[0].Output()

	if affs, ok := allAffine(ts); ok {
		hom := affs[0].hom
		for _, a := range affs[1:] {
			prod, err := matrix.Mul(hom, a.hom)
			if err != nil {
				return nil, fmt.Errorf("Compose: %w", err)
			}
			hom = prod
		}

		return NewAffine(hom, in, out)
	}

	// General path: chain forwards in application order (last listed
	// first); the inverse chain exists only when every step has one.
	fwd := make([]Evaluator, 0, len(ts))
	for i := len(ts) - 1; i >= 0; i-- {
		fwd = append(fwd, ts[i].forward())
	}
	opts := make([]MapOption, 0, 1)
	bwd := make([]Evaluator, 0, len(ts))
	invertible := true
	for _, t := range ts {
		b := t.backward()
		if b == nil {
			invertible = false

			break
		}
		bwd = append(bwd, b)
	}
	if invertible {
		opts = append(opts, WithInverse(chainKernel{steps: bwd}))
	}

	return NewMap(chainKernel{steps: fwd}, in, out, opts...)
}
