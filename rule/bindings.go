package rule

import (
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// Bindings generates every instance of rules I, II, and III whose
// compatibility check passes for p, per spec.md §4.F. Inverse rules are
// intentionally excluded: spec.md §4.G's forward search relies on using
// only I/II/III to keep the reachable-expression set finite, and
// InverseBindings below is kept separate so that guarantee is visible at
// the call site rather than buried in a shared parameter.
func Bindings(p expr.P, g *graph.Graph, latents variable.Set) []Rule {
	var out []Rule

	for _, z := range nonEmptySubsets(p.Z()) {
		r := Rule{kind: RuleI, y: p.Y(), x: p.Do(), bound: z, w: p.Z().Minus(z)}
		if r.IsCompatibleWith(g, latents) {
			out = append(out, r)
		}
	}

	for _, z := range nonEmptySubsets(p.Do()) {
		x := p.Do().Minus(z)

		rII := Rule{kind: RuleII, y: p.Y(), x: x, bound: z, w: p.Z()}
		if rII.IsCompatibleWith(g, latents) {
			out = append(out, rII)
		}

		rIII := Rule{kind: RuleIII, y: p.Y(), x: x, bound: z, w: p.Z()}
		if rIII.IsCompatibleWith(g, latents) {
			out = append(out, rIII)
		}
	}

	return out
}

// InverseBindings generates every instance of rules I^-1, II^-1, and
// III^-1 available for p against the observed variables of g: a
// candidate must not already appear among p's bound variables (Y, Do, or
// Z), since the inverse's job is to introduce a variable the statement
// does not yet mention.
func InverseBindings(p expr.P, g *graph.Graph, latents variable.Set) []Rule {
	available := g.Observed().Minus(p.Y()).Minus(p.Do()).Minus(p.Z())

	var out []Rule
	for _, z := range nonEmptySubsets(available) {
		rI := Rule{kind: RuleIInv, y: p.Y(), x: p.Do(), bound: z, w: p.Z()}
		if rI.IsCompatibleWith(g, latents) {
			out = append(out, rI)
		}

		rII := Rule{kind: RuleIIInv, y: p.Y(), x: p.Do(), bound: z, w: p.Z()}
		if rII.IsCompatibleWith(g, latents) {
			out = append(out, rII)
		}

		rIII := Rule{kind: RuleIIIInv, y: p.Y(), x: p.Do(), bound: z, w: p.Z()}
		if rIII.IsCompatibleWith(g, latents) {
			out = append(out, rIII)
		}
	}
	return out
}
