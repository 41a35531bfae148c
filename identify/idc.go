package identify

import (
	"github.com/go-causalid/causalid/ccomp"
	"github.com/go-causalid/causalid/dsep"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// IDC extends ID to conditional queries P(y | do(x), w), per spec.md
// §4.G's "IDC extends ID to conditional queries by moving observed
// variables into the intervention set when a d-separation condition
// holds" and the Shpitser-Pearl IDC algorithm it summarizes: for each
// candidate z in w, if y is d-separated from z given x and the rest of
// w in the graph with X's incoming edges and z's outgoing edges cut
// (G-bar-X-underbar-Z), z behaves as though it had been intervened upon
// and migrates from conditioning into the intervention set. Once no
// such z remains, the conditional query reduces to an ID call over
// y ∪ w followed by a Bayes-rule division by the marginal over w.
func IDC(y, x, w variable.Set, g *graph.Graph) (expr.Expression, *ccomp.Hedge, error) {
	for _, z := range w.Slice() {
		rest := w.Minus(variable.Of(z))
		mutilated := g.Orphan(x).Bereave(variable.Of(z))
		if dsep.ConditionallyIndependent(mutilated, y, variable.Of(z), x.Union(rest)) {
			return IDC(y, x.Add(z), rest, g)
		}
	}

	joint, hedge, err := ID(y.Union(w), x, g)
	if err != nil {
		return nil, nil, err
	}
	if hedge != nil {
		return nil, hedge, nil
	}
	if w.IsEmpty() {
		return joint, nil, nil
	}

	marginal, err := expr.NewMarginalization(joint, y)
	if err != nil {
		return nil, nil, err
	}
	return expr.NewQuotient(joint, marginal), nil, nil
}
