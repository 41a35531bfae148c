package graph

import "github.com/go-causalid/causalid/variable"

// unionFind is a minimal disjoint-set structure keyed by variable name,
// used to compute bidirected (latent-confounded) connectivity classes.
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

// latentChainClasses computes, for the given variables/equations/latents,
// the disjoint-set union-find of bidirected connectivity per spec.md
// §4.E: two variables are unioned whenever an equation's outcome has a
// latent variable among its parents, and this is applied transitively, so
// a chain of latents confounding further latents collapses into a single
// class ("transitive closure...through latent-only intermediate inverted
// forks").
func latentChainClasses(vars variable.Set, equations []StructuralEquation, latents variable.Set) *unionFind {
	names := make([]string, 0, vars.Len())
	for _, v := range vars.Slice() {
		names = append(names, v.Name())
	}
	uf := newUnionFind(names)
	for _, eq := range equations {
		for _, p := range eq.X.Slice() {
			if latents.Contains(p) {
				uf.union(p.Name(), eq.Y.Name())
			}
		}
	}
	return uf
}
