package ccomp

import (
	"sort"

	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// unionFind is a minimal disjoint-set structure keyed by variable name.
type unionFind struct {
	parent map[string]string
}

func newUnionFind(names []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(names))}
	for _, n := range names {
		uf.parent[n] = n
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// bidirectedClasses unions every pair of variables that share a latent
// parent, transitively, so a chain of latents confounding further
// latents collapses into a single class (spec.md §4.E).
func bidirectedClasses(g *graph.Graph) *unionFind {
	names := make([]string, 0, g.Variables().Len())
	for _, v := range g.Variables().Slice() {
		names = append(names, v.Name())
	}
	uf := newUnionFind(names)
	for _, eq := range g.Equations() {
		for _, p := range eq.X.Slice() {
			if g.Latents().Contains(p) {
				uf.union(p.Name(), eq.Y.Name())
			}
		}
	}
	return uf
}

// MaximalCComponents partitions g's observed vertex set into maximal
// c-components: pop an arbitrary vertex, repeatedly fold in every
// bidirected-edge neighbour until the class stops growing, restart with
// a fresh unassigned vertex (spec.md §4.E). The union-find above
// computes the identical partition directly.
func MaximalCComponents(g *graph.Graph) []variable.Set {
	uf := bidirectedClasses(g)

	groups := make(map[string][]variable.Variable)
	for _, v := range g.Observed().Slice() {
		root := uf.find(v.Name())
		groups[root] = append(groups[root], v)
	}

	roots := make([]string, 0, len(groups))
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Strings(roots)

	out := make([]variable.Set, 0, len(roots))
	for _, r := range roots {
		out = append(out, variable.Of(groups[r]...))
	}
	return out
}
