package identify

import (
	"sort"

	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// topologicalOrder returns a deterministic topological order of vs
// within g (Kahn's algorithm over g.Parents/g.Children restricted to
// vs, ties broken by variable name). vs is assumed acyclic, which
// graph.Graph already guarantees for its own variable set.
//
// This is a direct topological sort rather than a call to
// g.AdmissibleOrderings(vs), which enumerates every consistent
// permutation: ID's truncated factorization (spec.md §4.G steps 1 and
// 6) needs exactly one order, and AdmissibleOrderings' factorial blow-up
// would be wasted work for graphs of any real size.
func topologicalOrder(g *graph.Graph, vs variable.Set) []variable.Variable {
	elems := vs.Slice()
	inDegree := make(map[string]int, len(elems))
	for _, v := range elems {
		inDegree[v.Name()] = g.Parents(variable.Of(v)).Intersect(vs).Len()
	}

	remaining := make(map[string]bool, len(elems))
	for _, v := range elems {
		remaining[v.Name()] = true
	}

	order := make([]variable.Variable, 0, len(elems))
	for len(remaining) > 0 {
		var ready []variable.Variable
		for _, v := range elems {
			if remaining[v.Name()] && inDegree[v.Name()] == 0 {
				ready = append(ready, v)
			}
		}
		sort.Slice(ready, func(i, j int) bool { return ready[i].Name() < ready[j].Name() })

		next := ready[0]
		order = append(order, next)
		delete(remaining, next.Name())
		for _, c := range g.Children(variable.Of(next)).Intersect(vs).Slice() {
			inDegree[c.Name()]--
		}
	}
	return order
}

// truncatedFactor builds ∏_{v in forVars} P({v} | predecessors(v)),
// where predecessors(v) is every variable preceding v in order —
// Tian's C-component factorization formula, used by ID's base case
// (spec.md §4.G step 1) and its singleton-component case (step 6).
// Predecessors are computed against the full order, not restricted to
// forVars, since the formula's soundness depends on the complete
// topological context even when only a sub-component's factors are
// wanted.
func truncatedFactor(order []variable.Variable, forVars variable.Set) expr.Expression {
	terms := make([]expr.Expression, 0, forVars.Len())
	predecessors := variable.Empty()
	for _, v := range order {
		if forVars.Contains(v) {
			terms = append(terms, expr.MustNewP(variable.Of(v), variable.Empty(), predecessors))
		}
		predecessors = predecessors.Add(v)
	}
	return expr.NewProduct(terms...)
}
