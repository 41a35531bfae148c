package expr

import (
	"fmt"

	"github.com/go-causalid/causalid/variable"
)

// Quotient is a ratio of two sub-expressions.
type Quotient struct {
	numerator   Expression
	denominator Expression
}

// NewQuotient builds a Quotient from numerator and denominator.
func NewQuotient(numerator, denominator Expression) Quotient {
	return Quotient{numerator: numerator, denominator: denominator}
}

// Numerator returns the quotient's numerator.
func (q Quotient) Numerator() Expression { return q.numerator }

// Denominator returns the quotient's denominator.
func (q Quotient) Denominator() Expression { return q.denominator }

func (Quotient) sealed() {}

// HatFree reports whether both numerator and denominator are hat-free.
func (q Quotient) HatFree() bool { return q.numerator.HatFree() && q.denominator.HatFree() }

// FreeVariables returns the union of the numerator's and denominator's
// free variables.
func (q Quotient) FreeVariables() variable.Set {
	return q.numerator.FreeVariables().Union(q.denominator.FreeVariables())
}

// Equal reports whether other is a Quotient with structurally equal
// numerator and denominator.
func (q Quotient) Equal(other Expression) bool {
	o, ok := other.(Quotient)
	if !ok {
		return false
	}
	return q.numerator.Equal(o.numerator) && q.denominator.Equal(o.denominator)
}

// Hash combines the numerator's and denominator's hashes with a variant
// tag; unlike Product, the combination is order-sensitive.
func (q Quotient) Hash() uint64 {
	return 0x51554f54 ^ (q.numerator.Hash() * 31) ^ q.denominator.Hash()
}

// String renders "numerator / denominator".
func (q Quotient) String() string {
	return fmt.Sprintf("%s / %s", q.numerator.String(), q.denominator.String())
}
