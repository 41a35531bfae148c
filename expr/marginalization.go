package expr

import (
	"fmt"
	"strings"

	"github.com/go-causalid/causalid/variable"
)

// Marginalization is the sum over margins of expression. margins must be
// a subset of expression's free variables (spec.md §9, resolved): a
// margin naming a do-bound (intervention) variable is rejected, since
// do-variables are never free.
type Marginalization struct {
	expression Expression
	margins    variable.Set
}

// NewMarginalization builds a Marginalization, validating that margins
// is a subset of expression's free variables. Marginalizing over the
// empty set is the identity and returns expression unchanged, per
// spec.md §4.A.
func NewMarginalization(expression Expression, margins variable.Set) (Expression, error) {
	if margins.IsEmpty() {
		return expression, nil
	}
	if !margins.SubsetOf(expression.FreeVariables()) {
		return nil, ErrMarginNotFree
	}
	return Marginalization{expression: expression, margins: margins}, nil
}

// MustNewMarginalization is NewMarginalization, panicking on error.
func MustNewMarginalization(expression Expression, margins variable.Set) Expression {
	m, err := NewMarginalization(expression, margins)
	if err != nil {
		panic(err)
	}
	return m
}

// Expression returns the inner (summed-over) expression.
func (m Marginalization) Expression() Expression { return m.expression }

// Margins returns the set of variables summed out.
func (m Marginalization) Margins() variable.Set { return m.margins }

func (Marginalization) sealed() {}

// HatFree reports whether the inner expression is hat-free.
func (m Marginalization) HatFree() bool { return m.expression.HatFree() }

// FreeVariables returns the inner expression's free variables minus the
// margins summed out.
func (m Marginalization) FreeVariables() variable.Set {
	return m.expression.FreeVariables().Minus(m.margins)
}

// Equal reports whether other is a Marginalization with the same margins
// and a structurally equal inner expression.
func (m Marginalization) Equal(other Expression) bool {
	o, ok := other.(Marginalization)
	if !ok {
		return false
	}
	return m.margins.Equal(o.margins) && m.expression.Equal(o.expression)
}

// Hash combines the inner expression's hash with the order-independent
// hash of margins and a variant tag.
func (m Marginalization) Hash() uint64 {
	return 0x4d415247 ^ (m.expression.Hash() * 17) ^ m.margins.Hash()
}

// String renders "E[expression;m1,m2,...]".
func (m Marginalization) String() string {
	return fmt.Sprintf("E[%s;%s]", m.expression.String(), strings.Join(namesOf(m.margins), ","))
}
