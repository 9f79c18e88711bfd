// Package coords models named coordinate systems: an ordered set of unique
// axis names, a display label, and a numeric precision.
//
// A System is an immutable value object. It knows how to validate a batch of
// coordinate values against its own dimensionality (CheckedValues), how to
// compare itself to another System, and how to look axes up by name.
//
// Precision is a total order over the numeric kinds a System can carry
// (Int32 < Int64 < Float32 < Float64 < Complex128). Promote computes the
// least-upper-bound precision of a set — the rule every construction site
// uses when combining systems of differing precision, instead of coercing
// silently.
//
// Product concatenates systems axis-wise, preserving order and promoting
// precision; it is the basis for block-diagonal transform products in the
// coordmap package.
package coords
