package adjust

import (
	"context"
	"sort"

	"github.com/go-causalid/causalid/dsep"
	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// choice is one open path's candidate pool for the odometer below. A
// path already blocked under the current conditioning set gets no choice
// at all, so it never constrains the combinations formed for the
// remaining paths.
type choice struct {
	path       dsep.Path
	candidates []variable.Variable // ranked descending by cross-path frequency
}

// Generator lazily enumerates sufficient adjustment sets for a fixed
// path collection, per spec.md §4.D. Construct with NewGenerator,
// BackdoorSets, or MediationSets; drain with Next.
type Generator struct {
	g          *graph.Graph
	w          variable.Set
	latents    variable.Set
	choices    []choice
	idx        []int
	infeasible bool
	exhausted  bool
	seen       []variable.Set
}

// NewGenerator builds a Generator over paths, ranking each path's
// blocker candidates (spec.md §4.C) by descending frequency across the
// paths still open under w, ties broken by variable order (step 2 of
// spec.md §4.D).
func NewGenerator(g *graph.Graph, paths []dsep.Path, w, latents variable.Set) *Generator {
	gen := &Generator{g: g, w: w, latents: latents}

	freq := map[string]int{}
	var openPaths []dsep.Path
	for _, p := range paths {
		if !p.IsOpen(w, g.Descendants) {
			continue
		}
		openPaths = append(openPaths, p)
		for _, v := range p.PathBlockers(w, latents, g.Descendants).Slice() {
			freq[v.Name()]++
		}
	}

	rank := func(v variable.Variable) (int, string) { return -freq[v.Name()], v.Name() }

	for _, p := range openPaths {
		blockers := p.PathBlockers(w, latents, g.Descendants).Slice()
		if len(blockers) == 0 {
			gen.infeasible = true
			gen.exhausted = true
			return gen
		}
		sort.Slice(blockers, func(i, j int) bool {
			ri, ni := rank(blockers[i])
			rj, nj := rank(blockers[j])
			if ri != rj {
				return ri < rj
			}
			return ni < nj
		})
		gen.choices = append(gen.choices, choice{path: p, candidates: blockers})
	}

	gen.idx = make([]int, len(gen.choices))
	return gen
}

// BackdoorSets streams sufficient sets blocking every backdoor path from
// x to y, given the variables z already conditioned on and latents l.
func BackdoorSets(g *graph.Graph, x, y, z, latents variable.Set) *Generator {
	return NewGenerator(g, dsep.BackdoorPaths(g, x, y), z, latents)
}

// MediationSets streams sufficient sets blocking every causal (directed)
// path from x to y.
func MediationSets(g *graph.Graph, x, y, latents variable.Set) *Generator {
	return NewGenerator(g, dsep.CausalPaths(g, x, y), variable.Empty(), latents)
}

// Next returns the next sufficient adjustment set, or ok=false once the
// generator is exhausted. It checks ctx between combinations so a
// long-running identification search can cancel cooperatively.
func (it *Generator) Next(ctx context.Context) (variable.Set, bool, error) {
	if it.infeasible {
		return variable.Set{}, false, nil
	}
	for !it.exhausted {
		if err := ctx.Err(); err != nil {
			return variable.Set{}, false, err
		}

		candidate := it.currentCombination()
		it.advance()

		if it.isDuplicate(candidate) {
			continue
		}
		if !it.coversAllPaths(candidate) {
			continue
		}
		it.seen = append(it.seen, candidate)
		return candidate, true, nil
	}
	return variable.Set{}, false, nil
}

func (it *Generator) currentCombination() variable.Set {
	s := variable.Empty()
	for i, c := range it.choices {
		v := c.candidates[it.idx[i]]
		if !v.Zero() {
			s = s.Add(v)
		}
	}
	return s
}

// advance increments the odometer, rightmost digit fastest, so the
// top-ranked choice for every path is tried before any choice is
// revisited, yielding minimal-overlap sets first.
func (it *Generator) advance() {
	for i := len(it.choices) - 1; i >= 0; i-- {
		it.idx[i]++
		if it.idx[i] < len(it.choices[i].candidates) {
			return
		}
		it.idx[i] = 0
	}
	it.exhausted = true
}

func (it *Generator) isDuplicate(s variable.Set) bool {
	for _, prior := range it.seen {
		if prior.Equal(s) {
			return true
		}
	}
	return false
}

func (it *Generator) coversAllPaths(s variable.Set) bool {
	combined := it.w.Union(s)
	for _, c := range it.choices {
		if c.path.IsOpen(combined, it.g.Descendants) {
			return false
		}
	}
	return true
}
