package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/coords"
)

// Evaluator maps a batch of points (rows) from one space to another.
// Implementations are small value-owning structs — they hold whatever
// operands they need by value or shared immutable reference, so sharing an
// Evaluator across transforms and goroutines is safe.
//
// Apply must treat its input as read-only and return a fresh batch with
// one output row per input row.
type Evaluator interface {
	Apply(pts [][]float64) ([][]float64, error)
}

// Func adapts a plain function to the Evaluator interface.
type Func func(pts [][]float64) ([][]float64, error)

// Apply invokes the wrapped function.
func (f Func) Apply(pts [][]float64) ([][]float64, error) { return f(pts) }

// Transform is a mapping between two named coordinate spaces. It is
// satisfied by exactly two variants in this package — *Map (general
// function) and *Affine (homogeneous matrix) — and the algebra functions
// switch on the concrete variant to choose exact matrix algebra over
// generic functional composition.
//
// All implementations are immutable after construction.
type Transform interface {
	// Input returns the input coordinate system.
	Input() coords.System
	// Output returns the output coordinate system.
	Output() coords.System
	// Eval validates pts against the input system, applies the transform,
	// validates the result against the output system and returns it in the
	// output precision.
	Eval(pts [][]float64) ([][]float64, error)
	// EvalPoint is Eval for a single point, promoted internally to a
	// one-row batch.
	EvalPoint(pt []float64) ([]float64, error)
	// Inverse returns the reverse transform and true, or (nil, false) when
	// no inverse is available. Absence is a normal outcome, not an error.
	Inverse() (Transform, bool)

	// forward and backward expose the raw evaluators for the composition
	// machinery. backward returns nil when the transform has no inverse.
	// Unexported on purpose: Map and Affine are the only variants.
	forward() Evaluator
	backward() Evaluator
}

// evalThrough runs the shared evaluation pipeline: validate against the
// input system, apply the evaluator, validate against the output system.
func evalThrough(in, out coords.System, ev Evaluator, pts [][]float64) ([][]float64, error) {
	checked, err := in.CheckedValues(pts)
	if err != nil {
		return nil, err
	}
	raw, err := ev.Apply(checked)
	if err != nil {
		return nil, err
	}
	if len(raw) != len(checked) {
		return nil, fmt.Errorf("%d output rows for %d input rows: %w",
			len(raw), len(checked), ErrFunctionShape)
	}

	return out.CheckedValues(raw)
}

// evalPointThrough promotes pt to a one-row batch, evaluates, and unwraps
// the single result row.
func evalPointThrough(t Transform, pt []float64) ([]float64, error) {
	batch, err := t.Eval([][]float64{pt})
	if err != nil {
		return nil, err
	}

	return batch[0], nil
}
