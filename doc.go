// Package coordspace is an in-memory toolkit for relating named coordinate
// spaces — voxel grids, scanner millimetres, standard anatomical spaces —
// through an exact algebra of transformations.
//
// 🚀 What is coordspace?
//
//	A small, thread-safe library that brings together:
//		• Named systems: ordered axes, labels & an explicit precision model
//		• Transforms: general coordinate maps and exact homogeneous affines
//		• Algebra: compose, block-diagonal product, concat, reorder, rename
//		• Linearization: finite-difference affine estimates of arbitrary maps
//		• Kernels: dense float64 matrices, LU inversion, Jacobi eigen
//		• Analysis: principal components of volumetric time series
//
// ✨ Why choose coordspace?
//
//   - Exact where possible – affine algebra is matrix algebra, never a
//     numeric approximation
//   - Rock-solid guarantees – immutable values, explicit errors, no panics
//     on user input
//   - Pure Go kernels – no cgo, deterministic results for identical inputs
//   - Honest inverses – a transform without an inverse says so with a
//     comma-ok, not an error
//
// Under the hood, everything is organized under four subpackages:
//
//	coords/   — coordinate systems: axes, labels, precision promotion
//	coordmap/ — the Transform variants and the composition algebra
//	matrix/   — dense linear-algebra kernels backing the affine machinery
//	pca/      — principal component analysis of 2-D sample data
//
// Quick ASCII example:
//
//	 (i, j, k) voxels ──diag(2, 3, 3)──▶ (x, y, z) mm ──rigid──▶ standard
//	          └────────────── Compose: one exact affine ──────────────┘
//
// Start with coords.NewSystem and coordmap.FromStartStep, then let
// coordmap.Compose and coordmap.Product do the bookkeeping.
package coordspace
