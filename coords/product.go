package coords

import "fmt"

// ProductLabel is the label assigned to systems built by Product.
const ProductLabel = "product"

// Product concatenates the axes of the given systems, in order, into a
// single System labelled ProductLabel whose precision is the promotion of
// the operands' precisions.
//
// Fails with ErrNoAxes on an empty operand list, ErrDuplicateAxis when an
// axis name occurs in more than one operand, and propagates Promote
// failures.
//
// Complexity: O(total axes).
func Product(systems ...System) (System, error) {
	if len(systems) == 0 {
		return System{}, ErrNoAxes
	}
	var names []string
	precs := make([]Precision, 0, len(systems))
	for _, s := range systems {
		names = append(names, s.names...)
		precs = append(precs, s.prec)
	}
	prec, err := Promote(precs...)
	if err != nil {
		return System{}, fmt.Errorf("Product: %w", err)
	}

	return NewSystem(names, ProductLabel, prec)
}
