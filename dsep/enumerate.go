package dsep

import "github.com/go-causalid/causalid/variable"

// graphView is the minimal surface of *graph.Graph the path engine
// needs. Declaring it locally (rather than importing package graph)
// keeps dsep's dependency on graph.Graph to exactly the methods used,
// and lets tests substitute a fake graph cheaply.
type graphView interface {
	Parents(variable.Set) variable.Set
	Children(variable.Set) variable.Set
	Descendants(variable.Set) variable.Set
}

// Paths enumerates every simple path between any member of x and any
// member of y, irrespective of blocking, following edges in either
// direction. This mirrors original_source/graph.py's Graph.paths, which
// takes no conditioning set: raw path enumeration does not depend on an
// adjustment set (only the derived open/blocked classification does —
// see ReachableFrom and Path.IsOpen).
func Paths(g graphView, x, y variable.Set) []Path {
	return enumeratePaths(g, x, y, true, true)
}

// CausalPaths enumerates every directed path from x to y (children edges
// only), per spec.md §4.B.
func CausalPaths(g graphView, x, y variable.Set) []Path {
	return enumeratePaths(g, x, y, false, true)
}

// BackdoorPaths enumerates every path from x to y whose first edge is an
// incoming arrow into x (a parent edge), with unrestricted direction
// afterward, per spec.md §4.B/§4.E.
func BackdoorPaths(g graphView, x, y variable.Set) []Path {
	var out []Path
	for _, start := range x.Slice() {
		for _, parent := range g.Parents(variable.Of(start)).Slice() {
			out = append(out, extendPaths(g, NewPath(start).Grow(parent, ArrowLeft), y, true, true)...)
		}
	}
	return out
}

// enumeratePaths starts one fresh path per member of x, then extends
// each recursively via extendPaths.
func enumeratePaths(g graphView, x, y variable.Set, allowParentStep, allowChildStep bool) []Path {
	var out []Path
	for _, start := range x.Slice() {
		out = append(out, extendPaths(g, NewPath(start), y, allowParentStep, allowChildStep)...)
	}
	return out
}

// extendPaths grows partial from its tip in every permitted direction,
// collecting every completed path that first reaches a member of y, and
// recursing through every other candidate. Candidates already on the
// path are rejected to keep paths simple; the vertex set is finite, so
// the recursion terminates.
func extendPaths(g graphView, partial Path, y variable.Set, allowParentStep, allowChildStep bool) []Path {
	var out []Path
	tip := partial.Tip()

	if allowParentStep {
		for _, p := range g.Parents(variable.Of(tip)).Slice() {
			out = append(out, stepInto(g, partial, p, ArrowLeft, y, allowParentStep, allowChildStep)...)
		}
	}
	if allowChildStep {
		for _, c := range g.Children(variable.Of(tip)).Slice() {
			out = append(out, stepInto(g, partial, c, ArrowRight, y, allowParentStep, allowChildStep)...)
		}
	}
	return out
}

func stepInto(g graphView, partial Path, next variable.Variable, arrow Arrow, y variable.Set, allowParentStep, allowChildStep bool) []Path {
	if partial.Contains(next) {
		return nil
	}
	grown := partial.Grow(next, arrow)
	if y.Contains(next) {
		return []Path{grown}
	}
	return extendPaths(g, grown, y, allowParentStep, allowChildStep)
}
