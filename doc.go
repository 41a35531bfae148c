// Package causalid is the root of a symbolic causal-identification engine.
//
// Given a causal diagram (a DAG over observed and latent variables) and an
// interventional query such as "the distribution of Y under do(X)", the
// engine decides whether the query is identifiable from observational data
// and, when it is, returns a symbolic expression over do-free conditional
// distributions together with a derivation.
//
// The engine is organized as a set of small, single-purpose packages:
//
//	variable/  — the Variable atom and immutable variable sets
//	graph/     — the causal DAG: parents/children/ancestors/descendants,
//	             orphan/bereave mutilation, sub-graphs, joint factorization
//	expr/      — the probability-expression algebra (P, Product, Quotient,
//	             Marginalization) with structural equality
//	dsep/      — the path engine and d-separation criterion
//	adjust/    — backdoor and mediation adjustment-set enumeration
//	ccomp/     — maximal c-components and hedge witnesses
//	rule/      — the do-calculus rules (I/II/III + inverses) and the
//	             backdoor/frontdoor adjustments
//	identify/  — the identification search: forward BFS over rule
//	             bindings, and the Shpitser-Pearl ID/IDC recursion
//	parser/    — the textual surface for graphs and expressions
//
// None of these packages perform numeric estimation, structure learning, or
// continuous-distribution manipulation; the engine is purely symbolic.
//
//	go get github.com/go-causalid/causalid
package causalid
