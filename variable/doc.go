// Package variable defines Variable, the atomic named entity that every
// graph, path, and probability expression in causalid is built from, plus
// Set, an immutable collection of variables with value semantics.
//
// What:
//
//   - Variable: a named atom. Names are non-empty strings containing no
//     whitespace and none of "[]*;,()/". Variables are totally ordered by
//     name and compare equal solely by name.
//   - Set: an immutable, hashable collection of variables, used everywhere
//     spec.md calls for "a set of variables" (Y, Z, do, latents, ...).
//
// Why:
//
//   - The rest of the engine (graph, expr, dsep, rule, identify) needs a
//     single, shared notion of "a variable" and "a set of variables" with
//     structural equality, so that expression and derivation equality can
//     be defined purely in terms of Set equality.
//
// Complexity:
//
//   - Variable construction: O(len(name)).
//   - Set operations (Union, Intersect, Minus, Contains): O(n) or O(n+m).
package variable
