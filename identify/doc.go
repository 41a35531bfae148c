// Package identify implements the identification search of spec.md
// §4.G: the statement-level forward breadth-first search over rules
// I/II/III, and the complete Shpitser-Pearl ID/IDC recursion over
// c-components and ancestral sub-graphs. Identify is the package's
// single public entry point, analogous to the teacher's core/api.go
// "thin, deterministic public facade" file — it tries the fast forward
// search first and falls back to the complete recursion, reporting a
// hedge witness in the same Result value rather than as a panic or a
// bare error (spec.md §7).
//
// There is no forward-identifiability macro rule value here either: a
// successful ID/IDC recursion is recorded as one Step whose Note is
// "ID/IDC recursion" and whose Rule is nil, and no compatibility check
// is run for that step. See rule/doc.go.
package identify
