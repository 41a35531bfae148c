// Package rule implements the do-calculus rule library of spec.md §4.F:
// rules I/II/III and their inverses, backdoor adjustment, and frontdoor
// adjustment. Each Rule is a value carrying the variable sets it binds
// (spec.md: "Each rule is a value containing the variable sets it binds
// plus any derived parameters"), with its compatibility check and its
// rewrite dispatched on an explicit Kind tag rather than through six
// separate types, since the six kinds differ only in which graph
// mutilation they check and which direction they rewrite.
//
// This package has no forward-identifiability macro rule: Bindings
// never offers one, and no Kind stands for it. Package identify records
// a successful ID/IDC recursion as a single derivation Step with no Rule
// (see identify/doc.go).
//
// Rules I/II/III operate on a single P term (spec.md's atomic
// conditional-probability statement); neither this package nor package
// identify applies a rule to the P leaves of a Product or Quotient.
package rule
