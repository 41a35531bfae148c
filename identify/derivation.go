package identify

import (
	"fmt"
	"strings"

	"github.com/go-causalid/causalid/ccomp"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/rule"
)

// Step is one applied transform in a Derivation's history. Exactly one
// of Rule or Note is meaningful: Rule records a genuine do-calculus rule
// application (from the forward search), Note records a step of the
// ID/IDC recursion, which does not correspond to a single named rule.
type Step struct {
	Rule   *rule.Rule
	Note   string
	Result expr.Expression
}

func (s Step) String() string {
	if s.Rule != nil {
		return fmt.Sprintf("%s => %s", s.Rule, s.Result)
	}
	return fmt.Sprintf("%s => %s", s.Note, s.Result)
}

// Derivation is the pair (final expression, history) of spec.md §3: two
// derivations are equal iff their final expressions are equal, the
// history is carried only for reporting.
type Derivation struct {
	Expression expr.Expression
	History    []Step
}

// Equal reports whether two derivations have structurally equal final
// expressions, ignoring history, per spec.md §3.
func (d Derivation) Equal(other Derivation) bool {
	return expr.Equal(d.Expression, other.Expression)
}

func (d Derivation) String() string {
	if len(d.History) == 0 {
		return d.Expression.String()
	}
	steps := make([]string, len(d.History))
	for i, s := range d.History {
		steps[i] = s.String()
	}
	return strings.Join(steps, " -> ")
}

// Result is the outer API's single "no silent fallback" outcome value
// for spec.md §7: exactly one of Derivation, Hedge, or Undetermined is
// set, merging the non-identifiable (#2) and search-exhaustion (#3)
// error kinds into one discriminated payload rather than two separate
// error returns.
type Result struct {
	Derivation   *Derivation
	Hedge        *ccomp.Hedge
	Undetermined bool
}

// Identified reports whether the query was resolved to a do-free
// derivation.
func (r Result) Identified() bool { return r.Derivation != nil }
