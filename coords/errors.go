package coords

import "errors"

var (
	// ErrNoAxes indicates a System was requested with an empty axis list.
	ErrNoAxes = errors.New("coords: system needs at least one axis")
	// ErrDuplicateAxis indicates two axes in one System share a name.
	ErrDuplicateAxis = errors.New("coords: duplicate axis name")
	// ErrBadPrecision indicates an unknown or zero Precision value.
	ErrBadPrecision = errors.New("coords: invalid precision")
	// ErrDimensionMismatch indicates a coordinate row whose length differs
	// from the System's dimensionality.
	ErrDimensionMismatch = errors.New("coords: coordinate dimension mismatch")
	// ErrUnknownAxis indicates a lookup for an axis name the System lacks.
	ErrUnknownAxis = errors.New("coords: unknown axis name")
)
