package graph

import (
	"fmt"

	"github.com/go-causalid/causalid/variable"
)

// StructuralEquation is an ordered pair (X, Y) meaning "Y is a function of
// the parent set X". Y must not appear in X.
type StructuralEquation struct {
	// X is the parent (input) set.
	X variable.Set
	// Y is the outcome (output) variable.
	Y variable.Variable
}

// String renders the equation as "Y<-X1,X2,..." (or bare "Y" if X is empty).
func (eq StructuralEquation) String() string {
	if eq.X.IsEmpty() {
		return eq.Y.Name()
	}
	return fmt.Sprintf("%s<-%s", eq.Y.Name(), eq.X.String())
}

// Graph is an immutable causal diagram: a triple (V, E, L) of variables,
// structural equations, and the latent subset, validated at construction
// for unique outcomes, full declaration, and acyclicity. Relationship
// queries are computed once at construction and never invalidated,
// because a Graph is never mutated in place — Orphan, Bereave, and
// SubGraph each build and return a fresh Graph.
type Graph struct {
	variables variable.Set
	equations []StructuralEquation
	latents   variable.Set

	// outcomeEq maps an outcome variable's name to its structural
	// equation, for O(1) parent lookup.
	outcomeEq map[string]StructuralEquation

	// cached relationship maps, keyed by variable name.
	parentsCache     map[string]variable.Set
	childrenCache    map[string]variable.Set
	ancestorsCache   map[string]variable.Set
	descendantsCache map[string]variable.Set
}

// New constructs a Graph from its variable set, structural equations, and
// latent subset, validating spec.md's invariants: every variable
// mentioned in an equation belongs to vars, no variable is the outcome of
// more than one equation, no equation's outcome appears among its own
// parents, and the induced directed graph is acyclic.
func New(vars variable.Set, equations []StructuralEquation, latents variable.Set) (*Graph, error) {
	outcomeEq := make(map[string]StructuralEquation, len(equations))
	for _, eq := range equations {
		if _, dup := outcomeEq[eq.Y.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOutcome, eq.Y.Name())
		}
		if !vars.Contains(eq.Y) {
			return nil, fmt.Errorf("%w: %q", ErrUndeclaredVariable, eq.Y.Name())
		}
		if eq.X.Contains(eq.Y) {
			return nil, fmt.Errorf("%w: %q", ErrSelfReferential, eq.Y.Name())
		}
		for _, x := range eq.X.Slice() {
			if !vars.Contains(x) {
				return nil, fmt.Errorf("%w: %q", ErrUndeclaredVariable, x.Name())
			}
		}
		outcomeEq[eq.Y.Name()] = eq
	}

	g := &Graph{
		variables: vars,
		equations: equations,
		latents:   latents,
		outcomeEq: outcomeEq,
	}
	g.buildParentsAndChildren()

	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	g.buildAncestorsAndDescendants()

	return g, nil
}

// buildParentsAndChildren populates parentsCache and childrenCache from
// the structural equations. O(V + E).
func (g *Graph) buildParentsAndChildren() {
	g.parentsCache = make(map[string]variable.Set, g.variables.Len())
	g.childrenCache = make(map[string]variable.Set, g.variables.Len())

	for _, v := range g.variables.Slice() {
		if eq, ok := g.outcomeEq[v.Name()]; ok {
			g.parentsCache[v.Name()] = eq.X
		} else {
			g.parentsCache[v.Name()] = variable.Empty()
		}
		g.childrenCache[v.Name()] = variable.Empty()
	}

	for _, eq := range g.equations {
		for _, parent := range eq.X.Slice() {
			g.childrenCache[parent.Name()] = g.childrenCache[parent.Name()].Add(eq.Y)
		}
	}
}

// checkAcyclic detects cycles via iterative reachability from each vertex
// to itself through the children relation, per spec.md §4.B.
func (g *Graph) checkAcyclic() error {
	for _, v := range g.variables.Slice() {
		if g.hasCycleThrough(v) {
			return fmt.Errorf("%w: %q", ErrCyclic, v.Name())
		}
	}
	return nil
}

func (g *Graph) hasCycleThrough(x variable.Variable) bool {
	visited := map[string]bool{x.Name(): true}
	queue := []variable.Variable{x}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, child := range g.childrenCache[cur.Name()].Slice() {
			if child.Name() == x.Name() {
				return true
			}
			if !visited[child.Name()] {
				visited[child.Name()] = true
				queue = append(queue, child)
			}
		}
	}
	return false
}

// buildAncestorsAndDescendants populates the transitive-closure caches
// from the already-validated (acyclic) parent/child caches.
func (g *Graph) buildAncestorsAndDescendants() {
	g.ancestorsCache = make(map[string]variable.Set, g.variables.Len())
	g.descendantsCache = make(map[string]variable.Set, g.variables.Len())
	for _, v := range g.variables.Slice() {
		g.ancestorsCache[v.Name()] = g.transitiveClosure(v, g.parentsCache)
		g.descendantsCache[v.Name()] = g.transitiveClosure(v, g.childrenCache)
	}
}

func (g *Graph) transitiveClosure(start variable.Variable, rel map[string]variable.Set) variable.Set {
	visited := map[string]bool{}
	result := variable.Empty()
	queue := rel[start.Name()].Slice()
	for len(queue) > 0 {
		x := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if visited[x.Name()] {
			continue
		}
		visited[x.Name()] = true
		result = result.Add(x)
		queue = append(queue, rel[x.Name()].Slice()...)
	}
	return result
}

// Variables returns the graph's full observed+latent variable set.
func (g *Graph) Variables() variable.Set { return g.variables }

// Observed returns the graph's observed variable set, V ∖ L.
func (g *Graph) Observed() variable.Set { return g.variables.Minus(g.latents) }

// Latents returns the graph's latent variable subset L.
func (g *Graph) Latents() variable.Set { return g.latents }

// Equations returns the graph's structural equations.
func (g *Graph) Equations() []StructuralEquation {
	out := make([]StructuralEquation, len(g.equations))
	copy(out, g.equations)
	return out
}

// HasVariable reports whether v belongs to the graph.
func (g *Graph) HasVariable(v variable.Variable) bool { return g.variables.Contains(v) }
