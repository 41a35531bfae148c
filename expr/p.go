package expr

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/go-causalid/causalid/variable"
)

// P is a probability atom P(Y | do(do), Z): the distribution of Y under
// intervention do(do), conditioned on Z. Y, do, and Z must be pairwise
// disjoint, and Y must be non-empty.
type P struct {
	y  variable.Set
	do variable.Set
	z  variable.Set
}

// NewP constructs a P-atom, validating disjointness and non-emptiness of
// Y per spec.md §3.
func NewP(y, do, z variable.Set) (P, error) {
	if y.IsEmpty() {
		return P{}, ErrEmptyOutcome
	}
	if y.Intersects(do) || y.Intersects(z) || do.Intersects(z) {
		return P{}, ErrNotDisjoint
	}
	return P{y: y, do: do, z: z}, nil
}

// MustNewP is NewP, panicking on error. Intended for literal expressions
// built in Go source (tests, scenario fixtures), not for parsing
// untrusted input.
func MustNewP(y, do, z variable.Set) P {
	p, err := NewP(y, do, z)
	if err != nil {
		panic(err)
	}
	return p
}

// Y returns the outcome set.
func (p P) Y() variable.Set { return p.y }

// Do returns the intervention set.
func (p P) Do() variable.Set { return p.do }

// Z returns the conditioning set.
func (p P) Z() variable.Set { return p.z }

// WithZ returns a copy of p with its conditioning set replaced by z,
// re-validating disjointness.
func (p P) WithZ(z variable.Set) (P, error) { return NewP(p.y, p.do, z) }

// WithDo returns a copy of p with its intervention set replaced by do,
// re-validating disjointness.
func (p P) WithDo(do variable.Set) (P, error) { return NewP(p.y, do, p.z) }

func (P) sealed() {}

// HatFree reports whether p has no intervention (do = ∅).
func (p P) HatFree() bool { return p.do.IsEmpty() }

// FreeVariables returns Y ∪ Z; do-variables are bound, not free.
func (p P) FreeVariables() variable.Set { return p.y.Union(p.z) }

// Equal reports whether other is a P-atom with the same Y, do, and Z.
func (p P) Equal(other Expression) bool {
	o, ok := other.(P)
	if !ok {
		return false
	}
	return p.y.Equal(o.y) && p.do.Equal(o.do) && p.z.Equal(o.z)
}

// Hash combines the order-independent hashes of Y, do, and Z with a
// variant tag so P-atoms never collide with other Expression variants
// by construction alone.
func (p P) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("P"))
	tag := h.Sum64()
	return tag ^ (p.y.Hash() * 1) ^ (p.do.Hash() * 3) ^ (p.z.Hash() * 7)
}

// String renders "P(Y|do(X1),do(X2),Z1,Z2)", omitting the conditioning
// bar entirely when do and Z are both empty.
func (p P) String() string {
	ys := namesOf(p.y)
	var rhs []string
	for _, d := range p.do.Slice() {
		rhs = append(rhs, fmt.Sprintf("do(%s)", d.Name()))
	}
	rhs = append(rhs, namesOf(p.z)...)
	if len(rhs) == 0 {
		return fmt.Sprintf("P(%s)", strings.Join(ys, ","))
	}
	return fmt.Sprintf("P(%s|%s)", strings.Join(ys, ","), strings.Join(rhs, ","))
}

func namesOf(s variable.Set) []string {
	vs := s.Slice()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}
	return out
}
