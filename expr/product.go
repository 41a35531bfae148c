package expr

import (
	"sort"
	"strings"

	"github.com/go-causalid/causalid/variable"
)

// Product is a commutative, associative collection of sub-expressions
// with set semantics: constructing a Product flattens any nested
// products and removes structurally-equal duplicates. A Product of one
// (distinct) term collapses to that term itself (spec.md §4.A).
type Product struct {
	terms []Expression
}

// NewProduct builds a Product from terms, flattening nested products and
// deduplicating by structural equality. If the result has exactly one
// distinct term, that term is returned directly rather than a
// single-element Product, per spec.md §4.A.
func NewProduct(terms ...Expression) Expression {
	flat := make([]Expression, 0, len(terms))
	flattenInto(&flat, terms)

	deduped := make([]Expression, 0, len(flat))
	for _, t := range flat {
		if !containsEqual(deduped, t) {
			deduped = append(deduped, t)
		}
	}

	if len(deduped) == 1 {
		return deduped[0]
	}
	return Product{terms: deduped}
}

func flattenInto(out *[]Expression, terms []Expression) {
	for _, t := range terms {
		if p, ok := t.(Product); ok {
			flattenInto(out, p.terms)
		} else {
			*out = append(*out, t)
		}
	}
}

func containsEqual(haystack []Expression, needle Expression) bool {
	for _, h := range haystack {
		if h.Equal(needle) {
			return true
		}
	}
	return false
}

// Terms returns the Product's distinct sub-expressions, in an
// unspecified but stable-per-call order.
func (p Product) Terms() []Expression {
	out := make([]Expression, len(p.terms))
	copy(out, p.terms)
	return out
}

func (Product) sealed() {}

// HatFree reports whether every term is hat-free.
func (p Product) HatFree() bool {
	for _, t := range p.terms {
		if !t.HatFree() {
			return false
		}
	}
	return true
}

// FreeVariables returns the union of every term's free variables.
func (p Product) FreeVariables() variable.Set {
	out := variable.Empty()
	for _, t := range p.terms {
		out = out.Union(t.FreeVariables())
	}
	return out
}

// Equal reports whether other is a Product containing the same multiset
// of terms (order-independent, via a greedy bipartite match).
func (p Product) Equal(other Expression) bool {
	o, ok := other.(Product)
	if !ok {
		return false
	}
	if len(p.terms) != len(o.terms) {
		return false
	}
	used := make([]bool, len(o.terms))
	for _, t := range p.terms {
		matched := false
		for i, u := range used {
			if u {
				continue
			}
			if t.Equal(o.terms[i]) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Hash is the order-independent sum of each term's hash, combined with a
// variant tag.
func (p Product) Hash() uint64 {
	var sum uint64
	for _, t := range p.terms {
		sum += t.Hash()
	}
	return 0x50524f44 ^ sum // "PROD" tag xor'd with the term-hash sum
}

// String renders "e1 * e2 * ...", with terms in a canonical (sorted by
// String()) order for determinism across calls.
func (p Product) String() string {
	strs := make([]string, len(p.terms))
	for i, t := range p.terms {
		strs[i] = t.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, " * ")
}
