// Package dsep implements the path engine of spec.md §4.C: the
// d-separation criterion over (arrow, vertex, arrow) triples, a Path
// value type with no back-reference to its Graph, path enumeration by
// recursive depth-first extension (paths are not pruned by any
// conditioning or adjustment set), and the derived conditional-independence
// and backdoor/causal-path queries of spec.md §4.B.
//
// Path values are deliberately decoupled from graph.Graph (spec.md §9,
// "Graph <-> Path coupling"): every function here takes the graph as an
// explicit argument, following the teacher's convention of algorithms
// operating on a *graph.Graph rather than graphs holding back-references
// to their algorithms (mirrored on dfs.TopologicalSort(g *core.Graph,
// ...) and bfs.BFS(g *core.Graph, ...)).
//
// What:
//
//   - Path: an ordered, non-self-intersecting sequence of variables with
//     a parallel sequence of arrows, plus a head sentinel.
//   - tripleOpen: the eight-row d-separation table of spec.md §4.C.
//   - Paths / CausalPaths / BackdoorPaths: enumerate simple paths between
//     two variable sets, irrespective of blocking.
//   - ConditionallyIndependent: true iff no path between Y and Z is open
//     under conditioning set W.
//   - PathBlockers: the internal vertices whose addition to the current
//     adjustment set would close a given path.
//
// Complexity:
//
//   - Path enumeration is exponential in the worst case (as many simple
//     paths as the graph admits) and is only ever run over the variables
//     spec.md's own algorithms call for (small X, Y, and adjustment
//     candidates), matching the teacher's framing of such searches as
//     bounded by problem size rather than by an artificial cap.
package dsep
