package dsep

import (
	"strings"

	"github.com/go-causalid/causalid/variable"
)

// Path is an ordered sequence of distinct variables v0,...,vn with a
// parallel sequence of arrows a1,...,an, where ai gives the direction of
// the edge between v(i-1) and vi. A fresh single-vertex path has one
// vertex and the sentinel head arrow ArrowNone.
type Path struct {
	vertices []variable.Variable
	arrows   []Arrow // len(arrows) == len(vertices); arrows[0] == ArrowNone
}

// NewPath starts a fresh path at v.
func NewPath(v variable.Variable) Path {
	return Path{vertices: []variable.Variable{v}, arrows: []Arrow{ArrowNone}}
}

// Grow returns a new Path extending the receiver's tip to v via arrow a.
// The receiver is never mutated.
func (p Path) Grow(v variable.Variable, a Arrow) Path {
	vs := make([]variable.Variable, len(p.vertices)+1)
	copy(vs, p.vertices)
	vs[len(p.vertices)] = v
	as := make([]Arrow, len(p.arrows)+1)
	copy(as, p.arrows)
	as[len(p.arrows)] = a
	return Path{vertices: vs, arrows: as}
}

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p.vertices) }

// Vertices returns the path's vertex sequence.
func (p Path) Vertices() []variable.Variable {
	out := make([]variable.Variable, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Tip returns the path's last vertex.
func (p Path) Tip() variable.Variable { return p.vertices[len(p.vertices)-1] }

// Head returns the path's first vertex.
func (p Path) Head() variable.Variable { return p.vertices[0] }

// Contains reports whether v already appears on the path.
func (p Path) Contains(v variable.Variable) bool {
	for _, x := range p.vertices {
		if x.Name() == v.Name() {
			return true
		}
	}
	return false
}

// String renders the path as an arrow-annotated chain, e.g. "X->Y<-Z".
func (p Path) String() string {
	var b strings.Builder
	for i, v := range p.vertices {
		if i > 0 {
			b.WriteString(p.arrows[i].String())
		}
		b.WriteString(v.Name())
	}
	return b.String()
}

// descendantsFn abstracts graph.Graph.Descendants so this package need
// not import package graph for the narrow purpose of the collider check
// (avoided here only to keep the dependency explicit at call sites;
// callers pass g.Descendants directly).
type descendantsFn func(variable.Set) variable.Set

// IsOpen reports whether the path is open (not d-separated) under
// conditioning set w: every internal triple must classify as open per
// tripleOpen. descendants computes the descendant set of a variable set
// (pass (*graph.Graph).Descendants directly).
func (p Path) IsOpen(w variable.Set, descendants descendantsFn) bool {
	for i := 1; i < len(p.vertices)-1; i++ {
		v := p.vertices[i]
		vInW := w.Contains(v)
		vHasDescInW := descendants(variable.Of(v)).Intersects(w)
		if !tripleOpen(p.arrows[i], p.arrows[i+1], vInW, vHasDescInW) {
			return false
		}
	}
	return true
}

// PathBlockers returns every internal, non-latent vertex v (excluding
// the path's endpoints) such that conditioning on w ∪ {v} closes the
// path, per spec.md §4.C. Not all returned vertices are individually
// necessary if w already blocks the path by itself.
func (p Path) PathBlockers(w, latents variable.Set, descendants descendantsFn) variable.Set {
	out := variable.Empty()
	for i := 1; i < len(p.vertices)-1; i++ {
		v := p.vertices[i]
		if w.Contains(v) || latents.Contains(v) {
			continue
		}
		trial := w.Add(v)
		if !p.IsOpen(trial, descendants) {
			out = out.Add(v)
		}
	}
	return out
}
