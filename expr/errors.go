package expr

import "errors"

// Sentinel errors for expression construction, following the teacher's
// errors.New + errors.Is convention (see graph/errors.go).
var (
	// ErrEmptyOutcome indicates a P-atom was constructed with an empty Y.
	ErrEmptyOutcome = errors.New("expr: P requires a non-empty outcome set Y")

	// ErrNotDisjoint indicates a P-atom's Y, do, and Z sets overlap.
	ErrNotDisjoint = errors.New("expr: P requires Y, do, and Z to be pairwise disjoint")

	// ErrMarginNotFree indicates a Marginalization's margins are not a
	// subset of the free variables of the expression being marginalized,
	// or that a margin names a do-bound (intervention) variable — the
	// resolved reading of spec.md §9's open question.
	ErrMarginNotFree = errors.New("expr: margins must be a subset of the expression's free variables")
)
