package variable

import (
	"hash/fnv"
	"sort"
	"strings"
)

// Set is an immutable collection of variables with value semantics: two
// Sets are equal iff they contain the same variables, regardless of how
// they were built. The zero Set is the empty set.
type Set struct {
	m map[string]Variable
}

// Empty returns the empty Set.
func Empty() Set { return Set{} }

// Of builds a Set from the given variables, deduplicating by name.
func Of(vs ...Variable) Set {
	if len(vs) == 0 {
		return Set{}
	}
	m := make(map[string]Variable, len(vs))
	for _, v := range vs {
		m[v.name] = v
	}
	return Set{m: m}
}

// Len returns the number of distinct variables in s.
func (s Set) Len() int { return len(s.m) }

// IsEmpty reports whether s has no elements.
func (s Set) IsEmpty() bool { return len(s.m) == 0 }

// Contains reports whether v is an element of s.
func (s Set) Contains(v Variable) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m[v.name]
	return ok
}

// Slice returns the elements of s in ascending name order. The returned
// slice is freshly allocated and safe to mutate.
func (s Set) Slice() []Variable {
	out := make([]Variable, 0, len(s.m))
	for _, v := range s.m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Union returns the set union of s and other, allocating a new Set.
func (s Set) Union(other Set) Set {
	out := make(map[string]Variable, len(s.m)+len(other.m))
	for k, v := range s.m {
		out[k] = v
	}
	for k, v := range other.m {
		out[k] = v
	}
	return Set{m: out}
}

// Add returns s with v added, allocating a new Set.
func (s Set) Add(v Variable) Set {
	out := make(map[string]Variable, len(s.m)+1)
	for k, v_ := range s.m {
		out[k] = v_
	}
	out[v.name] = v
	return Set{m: out}
}

// Intersect returns the set intersection of s and other.
func (s Set) Intersect(other Set) Set {
	small, big := s, other
	if len(other.m) < len(s.m) {
		small, big = other, s
	}
	out := make(map[string]Variable, len(small.m))
	for k, v := range small.m {
		if _, ok := big.m[k]; ok {
			out[k] = v
		}
	}
	return Set{m: out}
}

// Minus returns the elements of s not in other (set difference).
func (s Set) Minus(other Set) Set {
	out := make(map[string]Variable, len(s.m))
	for k, v := range s.m {
		if _, ok := other.m[k]; !ok {
			out[k] = v
		}
	}
	return Set{m: out}
}

// Intersects reports whether s and other share at least one element.
func (s Set) Intersects(other Set) bool {
	small, big := s, other
	if len(other.m) < len(s.m) {
		small, big = other, s
	}
	for k := range small.m {
		if _, ok := big.m[k]; ok {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every element of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for k := range s.m {
		if _, ok := other.m[k]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same variables.
func (s Set) Equal(other Set) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for k := range s.m {
		if _, ok := other.m[k]; !ok {
			return false
		}
	}
	return true
}

// Each calls fn for every element of s in ascending name order.
func (s Set) Each(fn func(Variable)) {
	for _, v := range s.Slice() {
		fn(v)
	}
}

// String renders s as a sorted, comma-separated list of names.
func (s Set) String() string {
	names := make([]string, 0, len(s.m))
	for _, v := range s.Slice() {
		names = append(names, v.name)
	}
	return strings.Join(names, ",")
}

// Hash returns an order-independent FNV-1a hash of s's elements, suitable
// for use as a map key component when Set itself cannot be a map key
// (Set embeds a map and so is not comparable).
func (s Set) Hash() uint64 {
	// Sum of per-element hashes: order-independent, and cheap enough that
	// collisions are handled by an Equal check at the call site rather
	// than by a stronger combining function.
	var total uint64
	for k := range s.m {
		h := fnv.New64a()
		_, _ = h.Write([]byte(k))
		total += h.Sum64()
	}
	return total
}
