package graph

import "github.com/go-causalid/causalid/variable"

// Orphan returns a new Graph with every incoming edge into s removed: each
// structural equation whose outcome lies in s is dropped entirely, so
// members of s become exogenous (parentless) in the result. The variable
// set and latent subset are unchanged.
//
// Re-validation never fails here: dropping equations cannot introduce a
// duplicate outcome, an undeclared variable, or a cycle.
func (g *Graph) Orphan(s variable.Set) *Graph {
	kept := make([]StructuralEquation, 0, len(g.equations))
	for _, eq := range g.equations {
		if !s.Contains(eq.Y) {
			kept = append(kept, eq)
		}
	}
	out, err := New(g.variables, kept, g.latents)
	if err != nil {
		// Unreachable: orphaning a validated graph cannot reintroduce a
		// validation failure (see doc comment).
		panic(err)
	}
	return out
}

// Bereave returns a new Graph with every outgoing edge from s removed:
// each structural equation whose parent set intersects s has s subtracted
// from that parent set. The variable set, latent subset, and the set of
// equation outcomes are unchanged.
func (g *Graph) Bereave(s variable.Set) *Graph {
	modified := make([]StructuralEquation, 0, len(g.equations))
	for _, eq := range g.equations {
		if eq.X.Intersects(s) {
			eq = StructuralEquation{X: eq.X.Minus(s), Y: eq.Y}
		}
		modified = append(modified, eq)
	}
	out, err := New(g.variables, modified, g.latents)
	if err != nil {
		// Unreachable: bereaving a validated graph cannot reintroduce a
		// validation failure (see doc comment).
		panic(err)
	}
	return out
}
