package expr

import "github.com/go-causalid/causalid/variable"

// Expression is the closed recursive sum type of spec.md §3: P, Product,
// Quotient, and Marginalization are its only variants. The interface is
// sealed by an unexported method so that no package outside expr can
// introduce a fifth variant.
type Expression interface {
	// HatFree reports whether no P-atom anywhere inside the expression
	// has a non-empty do field.
	HatFree() bool

	// Equal reports structural equality modulo Product's set
	// commutativity.
	Equal(other Expression) bool

	// Hash returns a structural hash consistent with Equal: equal
	// expressions always hash equal (the converse need not hold).
	Hash() uint64

	// FreeVariables returns the expression's free (summable/observable)
	// variables: for a P-atom this is Y ∪ Z, excluding do — do-variables
	// are bound by the intervention, not free (spec.md §9, resolved).
	FreeVariables() variable.Set

	// String renders a canonical textual form for debugging. It is not
	// guaranteed to round-trip through package parser.
	String() string

	sealed()
}

// Equal is a package-level convenience matching two possibly-nil
// Expression values (both nil compares equal; exactly one nil does not).
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
