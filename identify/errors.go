package identify

import "errors"

// Sentinel errors for the identify package, following the teacher's
// errors.New + errors.Is convention (see graph/errors.go, expr/errors.go).
var (
	// ErrUnsupportedQuery indicates the query expression is not a single
	// P-atom: the ID/IDC recursion of spec.md §4.G is only defined over a
	// single (Y, X, Z) statement, not an arbitrary Product/Quotient/
	// Marginalization of several do-bearing atoms.
	ErrUnsupportedQuery = errors.New("identify: query must be a single P-atom")

	// ErrVariableNotObserved indicates the query names a variable absent
	// from the supplied graph's observed set.
	ErrVariableNotObserved = errors.New("identify: query variable is not observed in the supplied graph")

	// ErrUndetermined indicates the forward search exceeded an optional
	// SearchOptions.MaxVisited bound before reaching a hat-free
	// expression or exhausting the frontier (spec.md §7#3, "search
	// exhaustion (optional)"). It is logically distinct from a hedge: a
	// hedge is a proof of non-identifiability, ErrUndetermined is a
	// refusal to keep looking.
	ErrUndetermined = errors.New("identify: search exceeded MaxVisited before resolving")
)
