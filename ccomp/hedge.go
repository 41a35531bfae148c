package ccomp

import (
	"fmt"

	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// CForest is a c-component whose vertices form a directed forest rooted
// at Roots: every non-root vertex has exactly one child within the
// forest, per Tian & Pearl's c-forest definition (spec.md §4.E).
type CForest struct {
	Vertices variable.Set
	Roots    variable.Set
}

func (f CForest) String() string {
	return fmt.Sprintf("{%s; roots=%s}", f.Vertices, f.Roots)
}

// Hedge is the (F, F') pair of spec.md §4.E: two c-forests sharing a
// root set with F' a subset of F's vertices (equal to it when the whole
// vertex set is a single c-component). Its existence for a
// query (Y, X) is the complete obstruction to identifiability
// (Shpitser & Pearl 2006) — this is the richer witness SPEC_FULL.md's
// resolved Open Question #3 calls for, in place of a bare pair of
// c-component vertex sets.
type Hedge struct {
	F      CForest
	FPrime CForest
}

func (h Hedge) String() string {
	return fmt.Sprintf("hedge{F=%s, F'=%s}", h.F, h.FPrime)
}

// BuildHedge witnesses ID's step-5 failure: C(G) collapsed to the whole
// vertex set V while the restricted search produced a single c-component
// S. The shared root set is (Ancestors(Y) ∪ Y) ∩ S, the vertices of S
// that are Y or through which Y is still reachable; when that
// intersection is empty (S sits
// entirely below Y), S itself stands in as the root set, since every
// vertex of a component with no proper ancestor-of-Y subset is
// degenerately its own root.
func BuildHedge(g *graph.Graph, y, fullVertices, componentS variable.Set) Hedge {
	roots := g.Ancestors(y).Union(y).Intersect(componentS)
	if roots.IsEmpty() {
		roots = componentS
	}
	return Hedge{
		F:      CForest{Vertices: fullVertices, Roots: roots},
		FPrime: CForest{Vertices: componentS, Roots: roots},
	}
}
