package graph

import (
	"fmt"

	"github.com/go-causalid/causalid/variable"
)

// SubGraph restricts the graph to s, keeping only equations whose outcome
// and all parents lie in s. Per spec.md §9 (resolved Open Question), the
// bidirected-preserving variant is authoritative: whenever two variables
// that both survive the restriction were connected in the original graph
// through a latent-only confounding path — even if the mediating latent
// itself is dropped from s — a fresh synthetic latent is introduced in
// the result so the surviving pair remains bidirectionally connected.
// This is required by the ID recursion's line 7 (sub-graph of a
// c-component), which depends on confounding surviving restriction.
func (g *Graph) SubGraph(s variable.Set) *Graph {
	fullClasses := latentChainClasses(g.variables, g.equations, g.latents)

	reducedEquations := make([]StructuralEquation, 0, len(g.equations))
	for _, eq := range g.equations {
		if !s.Contains(eq.Y) {
			continue
		}
		reducedEquations = append(reducedEquations, StructuralEquation{
			X: eq.X.Intersect(s),
			Y: eq.Y,
		})
	}
	reducedLatents := g.latents.Intersect(s)
	reducedClasses := latentChainClasses(s, reducedEquations, reducedLatents)

	// Group s's members by their full-graph class, then check whether
	// that class is already a single connected piece in the reduced
	// graph; if not, stitch it back together with a synthetic latent.
	byFullClass := map[string][]variable.Variable{}
	for _, v := range s.Slice() {
		rep := fullClasses.find(v.Name())
		byFullClass[rep] = append(byFullClass[rep], v)
	}

	finalEquations := reducedEquations
	finalLatents := reducedLatents
	finalVariables := s
	syntheticIdx := 0

	for _, members := range byFullClass {
		if len(members) < 2 {
			continue
		}
		allConnected := true
		first := reducedClasses.find(members[0].Name())
		for _, m := range members[1:] {
			if reducedClasses.find(m.Name()) != first {
				allConnected = false
				break
			}
		}
		if allConnected {
			continue
		}

		syntheticIdx++
		synthetic, err := variable.New(fmt.Sprintf("_U%d", syntheticIdx))
		if err != nil {
			// Unreachable: "_U<n>" never contains a reserved character.
			panic(err)
		}
		finalVariables = finalVariables.Add(synthetic)
		finalLatents = finalLatents.Add(synthetic)
		for _, m := range members {
			finalEquations = rebindParent(finalEquations, m, synthetic)
		}
	}

	out, err := New(finalVariables, finalEquations, finalLatents)
	if err != nil {
		// Unreachable: restricting variables/equations to a subset and
		// adding fresh, non-colliding exogenous latents cannot violate
		// uniqueness, declaration, or acyclicity.
		panic(err)
	}
	return out
}

// rebindParent adds parent to the parent set of the equation outcome at
// v, inserting a parentless equation for v if none exists yet.
func rebindParent(equations []StructuralEquation, v, parent variable.Variable) []StructuralEquation {
	for i, eq := range equations {
		if eq.Y.Name() == v.Name() {
			equations[i] = StructuralEquation{X: eq.X.Add(parent), Y: eq.Y}
			return equations
		}
	}
	return append(equations, StructuralEquation{X: variable.Of(parent), Y: v})
}
