// Package expr implements the probability-expression algebra of spec.md
// §3/§4.A: a closed recursive sum type (P, Product, Quotient,
// Marginalization) with structural equality modulo set/product
// commutativity, hat-freeness testing, and a canonical debug-only
// textual form.
//
// What:
//
//   - P(Y, do, Z): a probability atom P(Y | do(do), Z), where Y, do, Z
//     are pairwise disjoint and Y is non-empty.
//   - Product(terms): a commutative, associative multiset of
//     sub-expressions, normalized by flattening nested products and
//     collapsing a singleton product to its one term.
//   - Quotient(numerator, denominator): two sub-expressions.
//   - Marginalization(expression, margins): sum over margins of
//     expression, where margins must be a subset of expression's free
//     variables (spec.md §9, resolved).
//
// Why:
//
//   - Every rule in package rule rewrites one Expression into another;
//     the identification search in package identify needs structural
//     equality over Expression to deduplicate its visited set. Neither
//     is possible without a canonical representation of "the same
//     expression, differently built".
//
// Complexity:
//
//   - Construction: O(n) in the size of the operands.
//   - Equal: O(n²) for Product (greedy pairwise matching of operands for
//     commutative comparison).
//   - Hash: O(n), order-independent for Product's term multiset.
package expr
