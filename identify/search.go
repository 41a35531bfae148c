package identify

import (
	"context"

	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/rule"
	"github.com/go-causalid/causalid/variable"
)

// SearchOptions configures the statement-level forward search. The zero
// value runs unbounded against a non-cancellable context.
type SearchOptions struct {
	// Ctx is checked before each frontier pop, so a long-running search
	// can be cancelled cooperatively (spec.md §5). Defaults to
	// context.Background() when nil.
	Ctx context.Context

	// MaxVisited optionally bounds the number of states the search will
	// pop before giving up with ErrUndetermined (spec.md §7#3). Zero
	// means unbounded.
	MaxVisited int
}

type searchState struct {
	p       expr.P
	history []Step
}

// Search runs the statement-level breadth-first search of spec.md §4.G:
// starting from p, it enumerates every rule I/II/III binding (inverse
// rules are excluded, per spec.md §9's "Search bound", to keep the
// reachable-expression set finite) and returns the first hat-free
// expression reached, together with the history of rules applied. It
// reports ok=false, err=nil when the frontier is exhausted without
// finding one — which does not by itself prove non-identifiability,
// since rules I/II/III alone cannot express a backdoor/frontdoor-style
// sum-over-adjustment-set rewrite; see Identify, which falls back to
// the complete ID/IDC recursion in that case.
func Search(p expr.P, g *graph.Graph, latents variable.Set, opts SearchOptions) (*Derivation, bool, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if p.HatFree() {
		return &Derivation{Expression: p}, true, nil
	}

	visited := map[string]bool{p.String(): true}
	queue := []searchState{{p: p}}
	visitedCount := 0

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		cur := queue[0]
		queue = queue[1:]
		visitedCount++
		if opts.MaxVisited > 0 && visitedCount > opts.MaxVisited {
			return nil, false, ErrUndetermined
		}

		for _, r := range rule.Bindings(cur.p, g, latents) {
			r := r
			next := r.Apply(cur.p)
			key := next.String()
			if visited[key] {
				continue
			}
			visited[key] = true

			hist := make([]Step, len(cur.history), len(cur.history)+1)
			copy(hist, cur.history)
			hist = append(hist, Step{Rule: &r, Result: next})

			if next.HatFree() {
				return &Derivation{Expression: next, History: hist}, true, nil
			}
			queue = append(queue, searchState{p: next, history: hist})
		}
	}
	return nil, false, nil
}
