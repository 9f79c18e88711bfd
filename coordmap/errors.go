package coordmap

import "errors"

var (
	// ErrNilFunction indicates a nil forward or inverse Evaluator at
	// construction time.
	ErrNilFunction = errors.New("coordmap: function must be non-nil")
	// ErrProbeFailed indicates the construction-time probe of a Map's
	// function failed; the underlying cause is wrapped alongside.
	ErrProbeFailed = errors.New("coordmap: function failed evaluation probe")
	// ErrAffineShape indicates a homogeneous matrix whose shape is not
	// (output dim + 1) x (input dim + 1).
	ErrAffineShape = errors.New("coordmap: affine matrix shape does not match coordinate dimensions")
	// ErrNotHomogeneous indicates a homogeneous matrix whose last row is
	// not [0, ..., 0, 1].
	ErrNotHomogeneous = errors.New("coordmap: affine matrix last row must be [0, ..., 0, 1]")
	// ErrAxisCount indicates axis-name counts that disagree with each other
	// or with a supplied matrix shape (FromMatrix, FromLinear,
	// FromStartStep).
	ErrAxisCount = errors.New("coordmap: axis-name count mismatch")
	// ErrSeamMismatch indicates adjacent transforms in Compose whose
	// coordinate systems do not match at the seam.
	ErrSeamMismatch = errors.New("coordmap: input and output coordinates do not match at composition seam")
	// ErrNoTransforms indicates an algebra call with no operands.
	ErrNoTransforms = errors.New("coordmap: at least one transform required")
	// ErrBadOrder indicates a reordering that is not a permutation of the
	// axes (wrong length, out-of-range index, or repeated position).
	ErrBadOrder = errors.New("coordmap: order is not a permutation of the axes")
	// ErrBadStep indicates a zero linearization step.
	ErrBadStep = errors.New("coordmap: linearization step must be non-zero")
	// ErrBadOrigin indicates a linearization origin whose length differs
	// from the declared input dimension.
	ErrBadOrigin = errors.New("coordmap: origin length does not match input dimension")
	// ErrBadDim indicates a non-positive input dimension.
	ErrBadDim = errors.New("coordmap: input dimension must be positive")
	// ErrFunctionShape indicates an Evaluator whose output batch shape is
	// inconsistent with its input batch.
	ErrFunctionShape = errors.New("coordmap: function output shape mismatch")
)
