package rule

import (
	"fmt"

	"github.com/go-causalid/causalid/dsep"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// Kind identifies which of the six do-calculus rules a Rule value
// represents.
type Kind int

const (
	RuleI Kind = iota
	RuleII
	RuleIII
	RuleIInv
	RuleIIInv
	RuleIIIInv
)

func (k Kind) String() string {
	switch k {
	case RuleI:
		return "I"
	case RuleII:
		return "II"
	case RuleIII:
		return "III"
	case RuleIInv:
		return "I^-1"
	case RuleIIInv:
		return "II^-1"
	case RuleIIIInv:
		return "III^-1"
	default:
		return "?"
	}
}

// family groups a Kind with its inverse: the compatibility check is
// identical across a family, only Apply's direction differs.
func (k Kind) family() Kind {
	switch k {
	case RuleI, RuleIInv:
		return RuleI
	case RuleII, RuleIIInv:
		return RuleII
	default:
		return RuleIII
	}
}

func (k Kind) forward() bool {
	return k == RuleI || k == RuleII || k == RuleIII
}

// Rule is one bound instance of a do-calculus rule: which statement it
// applies to (Y, X, W) and which variable subset (Bound) it moves.
//
//   - RuleI / RuleIInv: X is the do-set, Bound is the observed subset
//     being dropped from (or, inverse, introduced into) the conditioning
//     set W.
//   - RuleII / RuleIIInv: X is the do-set remaining after removing Bound;
//     Bound is the do-subset being exchanged with conditioning on W.
//   - RuleIII / RuleIIIInv: same shape as II, but Bound is discarded
//     entirely (forward) or reintroduced as a fresh intervention
//     (inverse) rather than migrated to the conditioning set.
type Rule struct {
	kind  Kind
	y     variable.Set
	x     variable.Set
	bound variable.Set
	w     variable.Set
}

func (r Rule) Kind() Kind           { return r.kind }
func (r Rule) Y() variable.Set      { return r.y }
func (r Rule) X() variable.Set      { return r.x }
func (r Rule) Bound() variable.Set  { return r.bound }
func (r Rule) W() variable.Set      { return r.w }

func (r Rule) String() string {
	return fmt.Sprintf("%s[Y=%s,X=%s,Z=%s,W=%s]", r.kind, r.y, r.x, r.bound, r.w)
}

// IsCompatibleWith runs the d-separation check for r's family against a
// mutilated version of g, per spec.md §4.F. latents is passed through to
// the underlying conditional-independence query untouched; it does not
// itself participate in the mutilation.
func (r Rule) IsCompatibleWith(g *graph.Graph, latents variable.Set) bool {
	switch r.kind.family() {
	case RuleI:
		mutilated := g.Orphan(r.x)
		return dsep.ConditionallyIndependent(mutilated, r.y, r.bound, r.w)
	case RuleII:
		mutilated := g.Orphan(r.x).Bereave(r.bound)
		return dsep.ConditionallyIndependent(mutilated, r.y, r.bound, r.x.Union(r.w))
	default: // RuleIII
		gx := g.Orphan(r.x)
		residual := r.bound.Minus(gx.Ancestors(r.w))
		mutilated := gx.Orphan(residual)
		return dsep.ConditionallyIndependent(mutilated, r.y, r.bound, r.x.Union(r.w))
	}
}

// Apply rewrites p according to r. The result is rebuilt from r's own
// Y, X, Bound and W; p itself is not inspected, so a p that does not
// match r's binding is neither detected nor rejected (Bindings never
// produces such a mismatch).
func (r Rule) Apply(p expr.P) expr.P {
	switch r.kind {
	case RuleI:
		// P(Y|do(X),Z,W) -> P(Y|do(X),W): drop Bound from the conditioning set.
		return expr.MustNewP(r.y, r.x, r.w)
	case RuleIInv:
		// Reverse of RuleI: reintroduce Bound into the conditioning set.
		return expr.MustNewP(r.y, r.x, r.w.Union(r.bound))
	case RuleII:
		// P(Y|do(X),do(Z),W) -> P(Y|do(X),Z,W): migrate Bound from do() to conditioning.
		return expr.MustNewP(r.y, r.x, r.w.Union(r.bound))
	case RuleIIInv:
		// Reverse of RuleII: migrate Bound from conditioning back to do().
		return expr.MustNewP(r.y, r.x.Union(r.bound), r.w)
	case RuleIII:
		// P(Y|do(X),do(Z),W) -> P(Y|do(X),W): drop do(Bound) entirely.
		return expr.MustNewP(r.y, r.x, r.w)
	default: // RuleIIIInv
		// Reverse of RuleIII: reintroduce Bound as a fresh intervention.
		return expr.MustNewP(r.y, r.x.Union(r.bound), r.w)
	}
}
