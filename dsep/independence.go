package dsep

import "github.com/go-causalid/causalid/variable"

// fullGraphView extends graphView with the Variables accessor needed to
// bound the open-path search.
type fullGraphView interface {
	graphView
	Variables() variable.Set
}

// ConditionallyIndependent reports whether y and z are d-separated given
// w: every simple path between a member of y and a member of z must be
// blocked under w. This is the direct criterion of spec.md §4.B
// (conditionally_independent(Y, Z, W)).
func ConditionallyIndependent(g fullGraphView, y, z, w variable.Set) bool {
	for _, path := range Paths(g, y, z) {
		if path.IsOpen(w, g.Descendants) {
			return false
		}
	}
	return true
}

// ReachableFrom returns every vertex reachable from x via an open path
// under conditioning set w, per the recursive open-path search described
// in spec.md §4.C (grounded on original_source/graph.py's
// _reachable_from_rec, adapted to the corrected tripleOpen table — see
// arrow.go). x itself is never included in the result.
func ReachableFrom(g fullGraphView, x, w variable.Set) variable.Set {
	reached := variable.Empty()
	for _, target := range g.Variables().Minus(x).Slice() {
		for _, path := range Paths(g, x, variable.Of(target)) {
			if path.IsOpen(w, g.Descendants) {
				reached = reached.Add(target)
				break
			}
		}
	}
	return reached
}
