package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/coords"
)

// probeRows is the batch size of the synthetic zero input every Map is
// evaluated on at construction time.
const probeRows = 10

// Map is a general coordinate map: an input and output coordinate system
// plus a forward Evaluator and an optional inverse Evaluator. Nothing
// beyond the affine case enforces that the inverse actually undoes the
// forward function; when present it is trusted to.
//
// A Map is immutable after construction.
type Map struct {
	in, out coords.System
	fn      Evaluator
	inv     Evaluator // nil when no inverse is known
}

// MapOption configures NewMap.
type MapOption func(*mapOptions)

type mapOptions struct {
	inv    Evaluator
	hasInv bool
}

// WithInverse supplies the inverse Evaluator, intended to satisfy
// x == inv(fn(x)) for all valid x.
func WithInverse(inv Evaluator) MapOption {
	return func(o *mapOptions) {
		o.inv = inv
		o.hasInv = true
	}
}

// NewMap builds a Map from a forward Evaluator and the two coordinate
// systems it connects.
//
// Fails with ErrNilFunction when fn (or an inverse supplied via
// WithInverse) is nil. The new Map is immediately probed with a synthetic
// batch of zero vectors shaped to the input system; any failure — a
// dimension-mismatched function, typically — surfaces here as
// ErrProbeFailed wrapping the cause, rather than on first real use.
func NewMap(fn Evaluator, in, out coords.System, opts ...MapOption) (*Map, error) {
	if fn == nil {
		return nil, fmt.Errorf("NewMap: forward: %w", ErrNilFunction)
	}
	var o mapOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasInv && o.inv == nil {
		return nil, fmt.Errorf("NewMap: inverse: %w", ErrNilFunction)
	}
	m := &Map{in: in, out: out, fn: fn, inv: o.inv}
	if _, err := m.Eval(zeroBatch(probeRows, in.Dim())); err != nil {
		return nil, fmt.Errorf("NewMap: %w: %w", ErrProbeFailed, err)
	}

	return m, nil
}

// Input returns the input coordinate system.
func (m *Map) Input() coords.System { return m.in }

// Output returns the output coordinate system.
func (m *Map) Output() coords.System { return m.out }

// Eval validates pts against the input system, applies the forward
// function, and validates the result against the output system. The
// returned batch is always in the output system's precision.
func (m *Map) Eval(pts [][]float64) ([][]float64, error) {
	return evalThrough(m.in, m.out, m.fn, pts)
}

// EvalPoint evaluates a single point, promoted to a one-row batch.
func (m *Map) EvalPoint(pt []float64) ([]float64, error) {
	return evalPointThrough(m, pt)
}

// Inverse returns a new Map with input/output systems swapped and
// forward/inverse functions swapped, or (nil, false) when no inverse
// function was supplied.
func (m *Map) Inverse() (Transform, bool) {
	if m.inv == nil {
		return nil, false
	}

	return &Map{in: m.out, out: m.in, fn: m.inv, inv: m.fn}, true
}

// Copy returns a new Map sharing the same Evaluators (they are stateless
// values) under fresh metadata wrapping.
func (m *Map) Copy() *Map {
	return &Map{in: m.in, out: m.out, fn: m.fn, inv: m.inv}
}

// String implements fmt.Stringer.
func (m *Map) String() string {
	return fmt.Sprintf("Map(\n   input=%s,\n   output=%s\n)", m.in, m.out)
}

func (m *Map) forward() Evaluator  { return m.fn }
func (m *Map) backward() Evaluator { return m.inv }

// ReorderedInput returns a transform whose input axes are permuted per
// order; see the package-level ReorderedInput.
func (m *Map) ReorderedInput(order Order, name string) (Transform, error) {
	return ReorderedInput(m, order, name)
}

// ReorderedOutput returns a transform whose output axes are permuted per
// order; see the package-level ReorderedOutput.
func (m *Map) ReorderedOutput(order Order, name string) (Transform, error) {
	return ReorderedOutput(m, order, name)
}

// RenamedInput returns a transform with a subset of input axes renamed;
// see the package-level RenamedInput.
func (m *Map) RenamedInput(mapping map[string]string, name string) (Transform, error) {
	return RenamedInput(m, mapping, name)
}

// RenamedOutput returns a transform with a subset of output axes renamed;
// see the package-level RenamedOutput.
func (m *Map) RenamedOutput(mapping map[string]string, name string) (Transform, error) {
	return RenamedOutput(m, mapping, name)
}
