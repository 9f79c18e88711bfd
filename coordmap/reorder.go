package coordmap

import (
	"fmt"

	"github.com/spatialref/coordspace/coords"
	"github.com/spatialref/coordspace/matrix"
)

// Order selects a permutation of a system's axes. The zero value reverses
// all axes; ByNames and ByIndices build explicit permutations.
type Order struct {
	names   []string
	indices []int
	byName  bool
	byIndex bool
}

// Reverse is the zero Order: all axes in reverse.
var Reverse = Order{}

// ByNames orders axes by listing every axis name in its new position.
func ByNames(names ...string) Order {
	return Order{names: append([]string(nil), names...), byName: true}
}

// ByIndices orders axes by listing every current position in its new
// position.
func ByIndices(indices ...int) Order {
	return Order{indices: append([]int(nil), indices...), byIndex: true}
}

// resolve turns the Order into a validated index permutation over s.
// Fails with ErrUnknownAxis for a name s lacks and ErrBadOrder when the
// result is not a permutation of 0..Dim-1.
func (o Order) resolve(s coords.System) ([]int, error) {
	n := s.Dim()
	var idx []int
	switch {
	case o.byName:
		idx = make([]int, 0, len(o.names))
		for _, name := range o.names {
			i, ok := s.Index(name)
			if !ok {
				return nil, fmt.Errorf("axis %q: %w", name, coords.ErrUnknownAxis)
			}
			idx = append(idx, i)
		}
	case o.byIndex:
		idx = append([]int(nil), o.indices...)
	default:
		idx = make([]int, n)
		for i := range idx {
			idx[i] = n - 1 - i
		}
	}
	if len(idx) != n {
		return nil, fmt.Errorf("%d positions for %d axes: %w", len(idx), n, ErrBadOrder)
	}
	seen := make([]bool, n)
	for _, i := range idx {
		if i < 0 || i >= n || seen[i] {
			return nil, fmt.Errorf("position %d: %w", i, ErrBadOrder)
		}
		seen[i] = true
	}

	return idx, nil
}

// permutationAffine builds the signed 0/1 Affine mapping the permuted
// system onto src: entry (order[i], i) is 1 and the homogeneous corner is
// fixed at 1.
func permutationAffine(src coords.System, order []int, label string) (*Affine, coords.System, error) {
	n := src.Dim()
	names := src.Names()
	permuted := make([]string, n)
	for i, j := range order {
		permuted[i] = names[j]
	}
	dst, err := coords.NewSystem(permuted, label, src.Precision())
	if err != nil {
		return nil, coords.System{}, err
	}
	perm, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return nil, coords.System{}, err
	}
	for i, j := range order {
		_ = perm.Set(j, i, 1)
	}
	_ = perm.Set(n, n, 1)
	aff, err := NewAffine(perm, dst, src)
	if err != nil {
		return nil, coords.System{}, err
	}

	return aff, dst, nil
}

// ReorderedInput returns a transform whose input axes are permuted per
// order (zero Order reverses them). name labels the new input system,
// defaulting to the current label.
//
// The permutation is realized as an Affine composed onto t, which is what
// makes reordering combine correctly with non-affine transforms: the
// result of reordering an Affine stays an Affine, and reordering a Map
// stays a Map.
func ReorderedInput(t Transform, order Order, name string) (Transform, error) {
	if t == nil {
		return nil, fmt.Errorf("ReorderedInput: %w", ErrNoTransforms)
	}
	if name == "" {
		name = t.Input().Label()
	}
	idx, err := order.resolve(t.Input())
	if err != nil {
		return nil, fmt.Errorf("ReorderedInput: %w", err)
	}
	perm, _, err := permutationAffine(t.Input(), idx, name)
	if err != nil {
		return nil, fmt.Errorf("ReorderedInput: %w", err)
	}

	return Compose(t, perm)
}

// ReorderedOutput returns a transform whose output axes are permuted per
// order (zero Order reverses them). name labels the new output system,
// defaulting to the current label.
func ReorderedOutput(t Transform, order Order, name string) (Transform, error) {
	if t == nil {
		return nil, fmt.Errorf("ReorderedOutput: %w", ErrNoTransforms)
	}
	if name == "" {
		name = t.Output().Label()
	}
	idx, err := order.resolve(t.Output())
	if err != nil {
		return nil, fmt.Errorf("ReorderedOutput: %w", err)
	}
	perm, dst, err := permutationAffine(t.Output(), idx, name)
	if err != nil {
		return nil, fmt.Errorf("ReorderedOutput: %w", err)
	}
	// The output-side permutation maps old output onto the permuted
	// system: the transpose of the input-side matrix.
	tr, err := matrix.Transpose(perm.hom)
	if err != nil {
		return nil, fmt.Errorf("ReorderedOutput: %w", err)
	}
	outPerm, err := NewAffine(tr, t.Output(), dst)
	if err != nil {
		return nil, fmt.Errorf("ReorderedOutput: %w", err)
	}

	return Compose(outPerm, t)
}

// RenamedInput returns a transform with a subset of input axes renamed per
// mapping (old name to new name), preserving axis order. name labels the
// new input system, defaulting to the current label. Fails with
// coords.ErrUnknownAxis naming any key absent from the current axes.
//
// Implemented as composition with an identity Affine whose systems differ
// only in names.
func RenamedInput(t Transform, mapping map[string]string, name string) (Transform, error) {
	if t == nil {
		return nil, fmt.Errorf("RenamedInput: %w", ErrNoTransforms)
	}
	if name == "" {
		name = t.Input().Label()
	}
	renamed, err := t.Input().Renamed(mapping, name)
	if err != nil {
		return nil, fmt.Errorf("RenamedInput: %w", err)
	}
	id, err := matrix.Identity(t.Input().Dim() + 1)
	if err != nil {
		return nil, fmt.Errorf("RenamedInput: %w", err)
	}
	bridge, err := NewAffine(id, renamed, t.Input())
	if err != nil {
		return nil, fmt.Errorf("RenamedInput: %w", err)
	}

	return Compose(t, bridge)
}

// RenamedOutput returns a transform with a subset of output axes renamed
// per mapping (old name to new name), preserving axis order. name labels
// the new output system, defaulting to the current label. Fails with
// coords.ErrUnknownAxis naming any key absent from the current axes.
func RenamedOutput(t Transform, mapping map[string]string, name string) (Transform, error) {
	if t == nil {
		return nil, fmt.Errorf("RenamedOutput: %w", ErrNoTransforms)
	}
	if name == "" {
		name = t.Output().Label()
	}
	renamed, err := t.Output().Renamed(mapping, name)
	if err != nil {
		return nil, fmt.Errorf("RenamedOutput: %w", err)
	}
	id, err := matrix.Identity(t.Output().Dim() + 1)
	if err != nil {
		return nil, fmt.Errorf("RenamedOutput: %w", err)
	}
	bridge, err := NewAffine(id, t.Output(), renamed)
	if err != nil {
		return nil, fmt.Errorf("RenamedOutput: %w", err)
	}

	return Compose(bridge, t)
}
