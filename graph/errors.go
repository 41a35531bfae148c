package graph

import "errors"

// Sentinel errors for graph construction and queries. Callers should use
// errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at the definition site, only at the call site via %w.
var (
	// ErrDuplicateOutcome indicates a variable appears as the outcome of
	// more than one structural equation.
	ErrDuplicateOutcome = errors.New("graph: variable occurs as outcome in more than one structural equation")

	// ErrUndeclaredVariable indicates a structural equation mentions a
	// variable absent from the declared variable set.
	ErrUndeclaredVariable = errors.New("graph: undeclared variable appears in structural equation")

	// ErrSelfReferential indicates a structural equation's outcome also
	// appears among its own parents.
	ErrSelfReferential = errors.New("graph: outcome cannot be its own parent")

	// ErrCyclic indicates the structural equations imply a directed cycle.
	ErrCyclic = errors.New("graph: structural equations are cyclic")

	// ErrUnknownVariable indicates an operation referenced a variable that
	// is not a member of the graph's variable set.
	ErrUnknownVariable = errors.New("graph: unknown variable")
)
