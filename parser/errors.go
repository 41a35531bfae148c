package parser

import "errors"

// Sentinel errors for syntax failures, following the teacher's
// errors.New + errors.Is convention used throughout graph and expr.
var (
	// ErrUnexpectedToken indicates the parser encountered a token it
	// could not fit into the grammar at its current position.
	ErrUnexpectedToken = errors.New("parser: unexpected token")

	// ErrUnexpectedEOF indicates the input ended before a construct the
	// grammar requires (a closing paren/bracket, a right-hand side) was
	// found.
	ErrUnexpectedEOF = errors.New("parser: unexpected end of input")

	// ErrMalformedEdge indicates a graph token contained both "->" and
	// "<-".
	ErrMalformedEdge = errors.New("parser: malformed edge token")

	// ErrEmptyDeclaration indicates a graph token split into a blank
	// variable name (e.g. a stray ",," or trailing comma).
	ErrEmptyDeclaration = errors.New("parser: empty variable declaration")
)
