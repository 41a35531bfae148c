// File: api.go
// Role: thin, deterministic public facade over the search (search.go),
// the ID/IDC recursion (id.go, idc.go), and the rest of the engine's
// graph/path/adjustment queries — mirroring the teacher's core/api.go
// convention of keeping the one entry point a hypothetical CLI would
// call free of algorithmic detail.
package identify

import (
	"context"
	"fmt"

	"github.com/go-causalid/causalid/adjust"
	"github.com/go-causalid/causalid/dsep"
	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/rule"
	"github.com/go-causalid/causalid/variable"
)

// withLatents returns g unchanged when its own latent subset already
// equals latents, or a freshly rebuilt graph over the same variables
// and equations with latents substituted otherwise. This is what lets
// Identify and its siblings honor spec.md §6's conceptual signature
// "identify(query, graph, latents)" even though graph.Graph already
// encodes its own latent subset as part of its (V, E, L) triple — a
// caller asking "what if these variables were latent instead" does not
// need to re-derive a Graph value by hand.
func withLatents(g *graph.Graph, latents variable.Set) (*graph.Graph, error) {
	if g.Latents().Equal(latents) {
		return g, nil
	}
	return graph.New(g.Variables(), g.Equations(), latents)
}

// Identify is the engine's single entry point: given a query expression,
// a causal graph, and a latent subset, it decides whether the query is
// identifiable and returns a Result discriminating success or a hedge
// witness. The forward search runs here without a MaxVisited bound, so
// Identify never reports search exhaustion.
//
// A hat-free query of any shape is returned unchanged as its own
// derivation. Otherwise only queries that are a single P-atom are
// supported (ErrUnsupportedQuery otherwise) — a query built from several
// do-bearing atoms combined by Product/Quotient/Marginalization is
// outside what spec.md §4.G's ID/IDC recursion is defined over.
func Identify(query expr.Expression, g *graph.Graph, latents variable.Set) (Result, error) {
	mutated, err := withLatents(g, latents)
	if err != nil {
		return Result{}, err
	}

	if query.HatFree() {
		return Result{Derivation: &Derivation{Expression: query}}, nil
	}

	p, ok := query.(expr.P)
	if !ok {
		return Result{}, fmt.Errorf("%w: got %T", ErrUnsupportedQuery, query)
	}
	if !p.Y().SubsetOf(mutated.Observed()) || !p.Do().SubsetOf(mutated.Observed()) || !p.Z().SubsetOf(mutated.Observed()) {
		return Result{}, fmt.Errorf("%w", ErrVariableNotObserved)
	}

	if d, found, err := Search(p, mutated, latents, SearchOptions{}); err != nil {
		return Result{}, err
	} else if found {
		return Result{Derivation: d}, nil
	}

	var result expr.Expression
	if p.Z().IsEmpty() {
		expression, h, err := ID(p.Y(), p.Do(), mutated)
		if err != nil {
			return Result{}, err
		}
		if h != nil {
			return Result{Hedge: h}, nil
		}
		result = expression
	} else {
		expression, h, err := IDC(p.Y(), p.Do(), p.Z(), mutated)
		if err != nil {
			return Result{}, err
		}
		if h != nil {
			return Result{Hedge: h}, nil
		}
		result = expression
	}

	return Result{Derivation: &Derivation{
		Expression: result,
		History:    []Step{{Note: "ID/IDC recursion", Result: result}},
	}}, nil
}

// BackdoorSets streams sufficient backdoor adjustment sets for (X, Y)
// given current conditioning z, per spec.md §6's
// "backdoor_sets(X, Y, graph, latents) → stream of Set<Variable>".
func BackdoorSets(x, y, z variable.Set, g *graph.Graph, latents variable.Set) (*adjust.Generator, error) {
	mutated, err := withLatents(g, latents)
	if err != nil {
		return nil, err
	}
	return adjust.BackdoorSets(mutated, x, y, z, latents), nil
}

// FrontdoorExpression searches for a front-door rewrite of P(Y|do(X)),
// per spec.md §6's "frontdoor_expression(X, Y, graph, latents) →
// Expression | None". ok is false when no mediation set satisfies all
// three front-door conditions.
func FrontdoorExpression(ctx context.Context, x, y variable.Set, g *graph.Graph, latents variable.Set) (expr.Expression, bool, error) {
	mutated, err := withLatents(g, latents)
	if err != nil {
		return nil, false, err
	}
	return rule.FrontdoorAdjustment(ctx, mutated, x, y, latents)
}

// IsConditionallyIndependent reports whether y and z are d-separated
// given w in g, per spec.md §6's
// "is_conditionally_independent(Y, Z, W, graph) → bool".
func IsConditionallyIndependent(y, z, w variable.Set, g *graph.Graph) bool {
	return dsep.ConditionallyIndependent(g, y, z, w)
}

// Paths streams every simple path between x and y, irrespective of
// blocking under w, per spec.md §6's "paths(X, Y, W, graph) → stream of
// Path". w is accepted for signature parity with the conceptual API but
// does not affect raw enumeration (only the derived open/blocked
// classification of a returned path depends on a conditioning set, via
// dsep.Path.IsOpen).
func Paths(x, y, w variable.Set, g *graph.Graph) []dsep.Path {
	return dsep.Paths(g, x, y)
}

// CausalPaths streams every directed path from x to y.
func CausalPaths(x, y variable.Set, g *graph.Graph) []dsep.Path {
	return dsep.CausalPaths(g, x, y)
}

// BackdoorPaths streams every path from x to y whose first edge is an
// incoming arrow into x.
func BackdoorPaths(x, y variable.Set, g *graph.Graph) []dsep.Path {
	return dsep.BackdoorPaths(g, x, y)
}
