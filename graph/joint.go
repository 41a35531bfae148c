package graph

import (
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/variable"
)

// JointDistribution returns the observational factorization
// ∏_v P({v} | parents(v)) over every variable in the graph (spec.md
// §4.B/§4.A). The result factors over exactly len(g.Variables()) terms
// whose outcome multiset equals the graph's variable set (spec.md §8).
func (g *Graph) JointDistribution() expr.Expression {
	terms := make([]expr.Expression, 0, g.variables.Len())
	for _, v := range g.variables.Slice() {
		terms = append(terms, expr.MustNewP(variable.Of(v), variable.Empty(), g.parentsCache[v.Name()]))
	}
	return expr.NewProduct(terms...)
}
