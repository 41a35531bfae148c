// Package graph defines the causal diagram: a directed acyclic graph over
// observed and latent variables, described by structural equations, with
// cached ancestor/descendant/parent/child relationships and the mutilation
// operations (Orphan, Bereave) that the do-calculus rules and the
// identification search depend on.
//
// What:
//
//   - Graph: an immutable (V, E, L) triple — variables, structural
//     equations, and the latent subset — validated at construction for
//     unique outcomes, fully declared variables, and acyclicity.
//   - Relationship queries: Parents, Children, Ancestors, Descendants,
//     computed once at construction and cached.
//   - Mutilation: Orphan(S) removes in-edges to S; Bereave(S) removes
//     out-edges from S. Both return a fresh Graph.
//   - SubGraph(S): restricts to S, preserving bidirected connectivity
//     through latents whenever both observed endpoints survive.
//   - JointDistribution: the observational factorization ∏_v P(v|parents(v)).
//   - AdmissibleOrderings: topological orderings of a vertex subset
//     consistent with the DAG.
//
// Why:
//
//   - Every rule in package rule and every step of the identification
//     search in package identify needs a canonical, race-free view of
//     "what causes what" and "what happens if I remove this edge" — this
//     package is that single source of truth.
//
// Complexity:
//
//   - New: O(V·(V + E)) to validate and build caches (one reachability
//     pass per vertex).
//   - Parents/Children: O(|S|) cached map lookups for a query set S.
//   - Ancestors/Descendants: O(V) from the cache, computed once at
//     construction via iterative reachability.
//   - Orphan/Bereave/SubGraph: O(V·(V + E)), since each returns a fresh Graph
//     with freshly computed caches (no invalidation is ever needed,
//     because Graph is immutable after New).
//
// Errors:
//
//	ErrDuplicateOutcome  - a variable is the outcome of more than one equation.
//	ErrUndeclaredVariable - an equation mentions a variable not in V.
//	ErrSelfReferential   - a structural equation's outcome is its own parent.
//	ErrCyclic            - the structural equations imply a directed cycle.
//	ErrUnknownVariable   - declared but returned by no operation; queries on
//	                       variables not in the graph yield empty sets.
package graph
