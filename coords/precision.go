package coords

import "math"

// Precision identifies the numeric kind a System's values are carried in.
//
// The constants form a total order used by Promote: combining two systems
// (or a system and a matrix) yields the least precision able to represent
// both, so Int32+Float32 promotes to Float32 and Float32+Float64 to
// Float64. The zero value is invalid on purpose — a System must be built
// with an explicit precision.
type Precision int

const (
	// Int32 is a 32-bit signed integer precision.
	Int32 Precision = iota + 1
	// Int64 is a 64-bit signed integer precision.
	Int64
	// Float32 is a single-precision floating-point precision.
	Float32
	// Float64 is a double-precision floating-point precision.
	Float64
	// Complex128 is a double-precision complex precision. Values are still
	// carried as float64 batches; the tag only participates in promotion.
	Complex128
)

// String returns the canonical lowercase name of p, or "invalid".
func (p Precision) String() string {
	switch p {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// valid reports whether p is one of the declared precision constants.
func (p Precision) valid() bool {
	return p >= Int32 && p <= Complex128
}

// Promote returns the least-upper-bound precision of ps.
//
// The set must be non-empty and every element must be a declared constant;
// otherwise Promote fails with ErrBadPrecision. Promotion is a pure
// function — callers combine precisions explicitly at construction sites
// rather than relying on implicit coercion.
//
// Complexity: O(len(ps)).
func Promote(ps ...Precision) (Precision, error) {
	if len(ps) == 0 {
		return 0, ErrBadPrecision
	}
	top := ps[0]
	for _, p := range ps {
		if !p.valid() {
			return 0, ErrBadPrecision
		}
		if p > top {
			top = p
		}
	}

	return top, nil
}

// coerce converts v to the representable value nearest to the semantics of
// a cast into p: float32 rounding for Float32, truncation toward zero for
// the integer precisions, and identity for Float64/Complex128.
func (p Precision) coerce(v float64) float64 {
	switch p {
	case Float32:
		return float64(float32(v))
	case Int32:
		return float64(int32(math.Trunc(v)))
	case Int64:
		return float64(int64(math.Trunc(v)))
	default:
		return v
	}
}
