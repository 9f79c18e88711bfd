package pca

import "errors"

var (
	// ErrEmptyData indicates a nil or zero-sized data matrix.
	ErrEmptyData = errors.New("pca: data must be a non-empty matrix")
	// ErrBadComponents indicates a requested component count outside
	// [1, rows].
	ErrBadComponents = errors.New("pca: component count out of range")
	// ErrBadTolRatio indicates a negative rank tolerance ratio.
	ErrBadTolRatio = errors.New("pca: tolerance ratio must be non-negative")
)
