package coords

import (
	"fmt"
	"strings"
)

// System is an ordered set of uniquely named axes plus a display label and
// a numeric precision. It is an immutable value: every method returns new
// data, none mutates the receiver, and copies may be shared freely across
// goroutines.
type System struct {
	names []string
	label string
	prec  Precision
}

// NewSystem builds a System from axis names, a label and a precision.
//
// Fails with ErrNoAxes on an empty name list, ErrDuplicateAxis when two
// axes share a name (the message carries the offender), and
// ErrBadPrecision for an undeclared precision value.
//
// Complexity: O(n) for n axes.
func NewSystem(names []string, label string, prec Precision) (System, error) {
	if len(names) == 0 {
		return System{}, ErrNoAxes
	}
	if !prec.valid() {
		return System{}, fmt.Errorf("NewSystem(%q): %w", label, ErrBadPrecision)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return System{}, fmt.Errorf("NewSystem(%q): axis %q: %w", label, n, ErrDuplicateAxis)
		}
		seen[n] = struct{}{}
	}
	own := make([]string, len(names))
	copy(own, names)

	return System{names: own, label: label, prec: prec}, nil
}

// MustSystem is NewSystem that panics on error. Intended for tests and
// package examples where the axis list is a literal.
func MustSystem(names []string, label string, prec Precision) System {
	s, err := NewSystem(names, label, prec)
	if err != nil {
		panic(err)
	}

	return s
}

// Axes splits a compact axis string into single-rune axis names, so
// Axes("ijk") == []string{"i", "j", "k"}. A convenience mirroring how
// small spatial systems are usually written down.
func Axes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// Dim returns the number of axes.
func (s System) Dim() int { return len(s.names) }

// Names returns a copy of the ordered axis names.
func (s System) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Name returns the axis name at position i. Fails with ErrUnknownAxis when
// i is outside [0, Dim).
func (s System) Name(i int) (string, error) {
	if i < 0 || i >= len(s.names) {
		return "", fmt.Errorf("Name(%d): %w", i, ErrUnknownAxis)
	}

	return s.names[i], nil
}

// Index returns the position of the named axis and whether it exists.
func (s System) Index(name string) (int, bool) {
	for i, n := range s.names {
		if n == name {
			return i, true
		}
	}

	return 0, false
}

// Label returns the display label.
func (s System) Label() string { return s.label }

// Precision returns the numeric precision tag.
func (s System) Precision() Precision { return s.prec }

// Equal reports whether s and o agree on axis names, order, label and
// precision.
func (s System) Equal(o System) bool {
	return s.Same(o) && s.label == o.label && s.prec == o.prec
}

// Same reports whether s and o agree on axis names and order, ignoring
// label and precision. Composition seams compare systems with Same so a
// promoted-precision rebuild of a system still matches the original.
func (s System) Same(o System) bool {
	if len(s.names) != len(o.names) {
		return false
	}
	for i, n := range s.names {
		if n != o.names[i] {
			return false
		}
	}

	return true
}

// WithPrecision returns a copy of s rebuilt with precision p. Axis names
// and label are preserved; fails with ErrBadPrecision on an undeclared p.
func (s System) WithPrecision(p Precision) (System, error) {
	if !p.valid() {
		return System{}, fmt.Errorf("WithPrecision: %w", ErrBadPrecision)
	}

	return System{names: s.names, label: s.label, prec: p}, nil
}

// Renamed returns a copy of s with a subset of axes renamed according to
// mapping (old name -> new name) and the given label. Fails with
// ErrUnknownAxis (naming the offender) when a key is not a current axis,
// and with ErrDuplicateAxis when the renaming collides.
func (s System) Renamed(mapping map[string]string, label string) (System, error) {
	for old := range mapping {
		if _, ok := s.Index(old); !ok {
			return System{}, fmt.Errorf("Renamed: axis %q: %w", old, ErrUnknownAxis)
		}
	}
	names := make([]string, len(s.names))
	for i, n := range s.names {
		if repl, ok := mapping[n]; ok {
			names[i] = repl
		} else {
			names[i] = n
		}
	}

	return NewSystem(names, label, s.prec)
}

// CheckedValues validates pts against the System and returns a fresh batch
// coerced to the System's precision. Every row must have exactly Dim
// elements; a short or long row fails with ErrDimensionMismatch naming the
// offending row. The input batch is never modified.
//
// Complexity: O(rows * Dim).
func (s System) CheckedValues(pts [][]float64) ([][]float64, error) {
	out := make([][]float64, len(pts))
	for r, row := range pts {
		if len(row) != len(s.names) {
			return nil, fmt.Errorf("CheckedValues: row %d has %d values, system %q has %d axes: %w",
				r, len(row), s.label, len(s.names), ErrDimensionMismatch)
		}
		dst := make([]float64, len(row))
		for c, v := range row {
			dst[c] = s.prec.coerce(v)
		}
		out[r] = dst
	}

	return out, nil
}

// CheckedPoint validates a single point and returns it as a one-row batch.
func (s System) CheckedPoint(pt []float64) ([][]float64, error) {
	return s.CheckedValues([][]float64{pt})
}

// String implements fmt.Stringer in the shape
// System(names=(i, j, k), label="voxels", precision=float64).
func (s System) String() string {
	return fmt.Sprintf("System(names=(%s), label=%q, precision=%s)",
		strings.Join(s.names, ", "), s.label, s.prec)
}
