// Package coordmap implements an algebra of transformations between named
// coordinate spaces — the machinery behind spatial registration of
// volumetric data, where a voxel grid must be related to physical space.
//
// Two transform variants exist and both satisfy the Transform interface:
//
//   - Map    — a general coordinate map: an input and output coords.System
//     plus a forward Evaluator and an optional inverse Evaluator.
//   - Affine — a transform represented exactly by a homogeneous matrix
//     [[A, b], [0, 1]]; its inverse is matrix inversion.
//
// The algebra builds new transforms out of existing ones:
//
//   - Compose — functional composition, right-to-left, with strict
//     coordinate-system matching at every seam.
//   - Product — block-diagonal combination acting independently on
//     disjoint groups of axes.
//   - Concat  — Product with a fresh scalar identity axis, for attaching a
//     non-spatial axis (time, say) to a spatial transform.
//   - ReorderedInput/Output, RenamedInput/Output — axis permutation and
//     renaming, implemented as composition with permutation/identity
//     Affines so they combine correctly with non-affine transforms too.
//   - Linearize — finite-difference estimate of the homogeneous matrix
//     best approximating an arbitrary Evaluator near an origin.
//
// When every operand of Compose or Product is an Affine, the result is an
// Affine computed by exact homogeneous matrix algebra — never by numeric
// approximation. Linearize is reserved for genuinely non-affine functions
// (where it is exact precisely when the function happens to be affine).
//
// Every transform is an immutable value after construction: the algebra
// allocates new instances, never mutates operands, and concurrent
// read-only use needs no locking.
//
// Absence of an inverse is not an error. Transform.Inverse returns
// (nil, false) for a non-invertible transform — a singular Affine or a Map
// built without an inverse Evaluator — and callers branch on the bool.
package coordmap
