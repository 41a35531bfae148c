package graph

import "github.com/go-causalid/causalid/variable"

// AdmissibleOrderings enumerates every permutation of s consistent with
// the graph's topological order: whenever a is an ancestor of b, a
// appears before b in every returned ordering. Variables with no
// ancestor/descendant relationship to any other member of s (isolated
// within s) may appear in any position.
//
// Complexity: O(|s|! * |s|^2) — enumeration is only intended for small
// adjustment/ordering sets, as in spec.md §4.D/§4.G.
func (g *Graph) AdmissibleOrderings(s variable.Set) [][]variable.Variable {
	elems := s.Slice()
	var orderings [][]variable.Variable
	perm := make([]variable.Variable, 0, len(elems))
	used := make([]bool, len(elems))

	var recurse func()
	recurse = func() {
		if len(perm) == len(elems) {
			ordered := make([]variable.Variable, len(perm))
			copy(ordered, perm)
			orderings = append(orderings, ordered)
			return
		}
		for i, v := range elems {
			if used[i] {
				continue
			}
			if g.violatesOrder(perm, v) {
				continue
			}
			used[i] = true
			perm = append(perm, v)
			recurse()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	recurse()
	return orderings
}

// violatesOrder reports whether appending next to perm would place a
// descendant of next before next, or next after one of its own
// descendants already placed — i.e. whether next is an ancestor of any
// already-placed element (which would put the ancestor too late).
func (g *Graph) violatesOrder(perm []variable.Variable, next variable.Variable) bool {
	descendantsOfNext := g.descendantsCache[next.Name()]
	for _, placed := range perm {
		if descendantsOfNext.Contains(placed) {
			// next is an ancestor of an already-placed element: placing
			// next now would put the ancestor after its descendant.
			return true
		}
	}
	return false
}
