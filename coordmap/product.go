package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/coords"
	"github.com/spatialref/coordspace/matrix"
)

// Product returns the block-diagonal ("topological") product of the given
// transforms. The result's input system concatenates the operands' input
// systems in order (promoting to a common precision), likewise for the
// output; evaluation applies each operand to its own column slice of the
// batch and concatenates results column-wise.
//
// When every operand is an Affine the result is an Affine whose matrix is
// the exact block-diagonal assembly of the operand matrices. Otherwise
// the result is a Map; a general product carries no inverse.
//
// Fails with ErrNoTransforms on an empty list and propagates
// coords.Product failures (duplicate axis names across operands).
func Product(ts ...Transform) (Transform, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("Product: %w", ErrNoTransforms)
	}
	inSystems := make([]coords.System, len(ts))
	outSystems := make([]coords.System, len(ts))
	for i, t := range ts {
		inSystems[i] = t.Input()
		outSystems[i] = t.Output()
	}
	in, err := coords.Product(inSystems...)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	out, err := coords.Product(outSystems...)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}

	if affs, ok := allAffine(ts); ok {
		hom, errAsm := blockDiagonal(affs, in.Dim(), out.Dim())
		if errAsm != nil {
			return nil, fmt.Errorf("Product: %w", errAsm)
		}

		return NewAffine(hom, in, out)
	}

	return NewMap(blockKernel{parts: append([]Transform(nil), ts...)}, in, out)
}

// blockDiagonal assembles the homogeneous block-diagonal matrix of the
// given affines: each operand's linear block lands on the diagonal, its
// translation stacks into the last column, and the homogeneous corner is 1.
func blockDiagonal(affs []*Affine, inDim, outDim int) (*matrix.Dense, error) {
	hom, err := matrix.NewDense(outDim+1, inDim+1)
	if err != nil {
		return nil, err
	}
	rowOff, colOff := 0, 0
	for _, a := range affs {
		linear := a.kernel.linear
		for i := 0; i < linear.Rows(); i++ {
			for j := 0; j < linear.Cols(); j++ {
				v, _ := linear.At(i, j)
				_ = hom.Set(rowOff+i, colOff+j, v)
			}
			_ = hom.Set(rowOff+i, inDim, a.kernel.translation[i])
		}
		rowOff += linear.Rows()
		colOff += linear.Cols()
	}
	_ = hom.Set(outDim, inDim, 1)

	return hom, nil
}

// Concat attaches a new scalar identity axis named axisName to both the
// input and the output of t — prepended by default, appended when
// appendAxis is true — leaving the transform's behavior on its original
// axes untouched. The usual use is adding a non-spatial axis (time, say)
// to a spatial transform.
func Concat(t Transform, axisName string, appendAxis bool) (Transform, error) {
	if t == nil {
		return nil, fmt.Errorf("Concat: %w", ErrNoTransforms)
	}
	axis, err := coords.NewSystem([]string{axisName}, "", coords.Float64)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}
	id, err := matrix.Identity(2)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}
	scalar, err := NewAffine(id, axis, axis)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}
	if appendAxis {
		return Product(t, scalar)
	}

	return Product(scalar, t)
}
