// Package parser implements the two small text surfaces of spec.md §6:
// the graph mini-language (declarations and edges separated by ";" or a
// newline) and the expression mini-language (P-atoms, E[...;...]
// marginalization, products, and quotients). It is grounded on
// original_source/graph.py's regex-based token splitter and
// original_source/p.py's EBNF grammar (there compiled by a tatsu PEG
// parser; re-expressed here as a hand-written recursive-descent parser
// sitting on a text/scanner-based lexer, since no PEG-generator
// dependency appears anywhere in the example pack).
//
// Neither parser performs semantic validation beyond what graph.New and
// expr.NewP/NewMarginalization already enforce at construction time —
// malformed input surfaces as one of those packages' sentinel errors, or
// one of this package's own syntax-error sentinels, per spec.md §7's
// "malformed input reported immediately, the operation does not start".
package parser
