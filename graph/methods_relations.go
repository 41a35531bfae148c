package graph

import "github.com/go-causalid/causalid/variable"

// Parents returns the union of the parent sets of every variable in s.
// Complexity: O(|s|) cache lookups.
func (g *Graph) Parents(s variable.Set) variable.Set {
	out := variable.Empty()
	for _, v := range s.Slice() {
		out = out.Union(g.parentsCache[v.Name()])
	}
	return out
}

// Children returns the union of the child sets of every variable in s.
func (g *Graph) Children(s variable.Set) variable.Set {
	out := variable.Empty()
	for _, v := range s.Slice() {
		out = out.Union(g.childrenCache[v.Name()])
	}
	return out
}

// Ancestors returns the union of the ancestor sets of every variable in
// s. A variable is never its own ancestor, since the graph is acyclic.
func (g *Graph) Ancestors(s variable.Set) variable.Set {
	out := variable.Empty()
	for _, v := range s.Slice() {
		out = out.Union(g.ancestorsCache[v.Name()])
	}
	return out
}

// Descendants returns the union of the descendant sets of every variable
// in s. A variable is never its own descendant.
func (g *Graph) Descendants(s variable.Set) variable.Set {
	out := variable.Empty()
	for _, v := range s.Slice() {
		out = out.Union(g.descendantsCache[v.Name()])
	}
	return out
}

// Neighbors returns Parents(s) ∪ Children(s).
func (g *Graph) Neighbors(s variable.Set) variable.Set {
	return g.Parents(s).Union(g.Children(s))
}
