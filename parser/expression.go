package parser

import (
	"fmt"

	"github.com/go-causalid/causalid/expr"
	"github.com/go-causalid/causalid/variable"
)

// ParseExpression parses spec.md §6's expression mini-language:
//
//	P(Y1,Y2|do(X1),do(X2),Z1,Z2)  - conditioning bar optional when the
//	                                 right-hand side is empty; do(...)
//	                                 and bare names may interleave
//	E[expr; v1,v2]                - marginalization
//	e1 * e2 * ...                 - product, left-associative
//	e1 / e2                       - quotient
//
// grounded on original_source/p.py's tatsu EBNF (EXPRESSION, QUOTIENT,
// PRODUCT, MARGINALIZATION, P, P_INNER productions), re-expressed as a
// hand-written recursive-descent parser: quotient binds loosest, then
// product, then the atomic P/E/paren forms.
func ParseExpression(s string) (expr.Expression, error) {
	lx := newLexer(s)
	e, err := parseExpr(lx)
	if err != nil {
		return nil, err
	}
	if tok := lx.peek(); tok.kind != kindEOF {
		return nil, fmt.Errorf("%w: trailing %q", ErrUnexpectedToken, tok.text)
	}
	return e, nil
}

func parseExpr(lx *lexer) (expr.Expression, error) {
	left, err := parseProduct(lx)
	if err != nil {
		return nil, err
	}
	if lx.peek().kind == kindSlash {
		lx.next()
		right, err := parseProduct(lx)
		if err != nil {
			return nil, err
		}
		return expr.NewQuotient(left, right), nil
	}
	return left, nil
}

func parseProduct(lx *lexer) (expr.Expression, error) {
	first, err := parseFactor(lx)
	if err != nil {
		return nil, err
	}
	terms := []expr.Expression{first}
	for lx.peek().kind == kindStar {
		lx.next()
		next, err := parseFactor(lx)
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return expr.NewProduct(terms...), nil
}

func parseFactor(lx *lexer) (expr.Expression, error) {
	tok := lx.next()
	switch tok.kind {
	case kindLParen:
		inner, err := parseExpr(lx)
		if err != nil {
			return nil, err
		}
		if err := expectKind(lx, kindRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case kindWord:
		switch tok.text {
		case "P":
			return parsePAtom(lx)
		case "E":
			return parseMarginalization(lx)
		default:
			return nil, fmt.Errorf("%w: expected P or E, got %q", ErrUnexpectedToken, tok.text)
		}
	case kindEOF:
		return nil, ErrUnexpectedEOF
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok.text)
	}
}

// parsePAtom parses the inside of "P(" ... ")" having already consumed
// the "P" word token; it expects the opening paren next.
func parsePAtom(lx *lexer) (expr.Expression, error) {
	if err := expectKind(lx, kindLParen); err != nil {
		return nil, err
	}
	y, err := parseVariableList(lx)
	if err != nil {
		return nil, err
	}
	do := variable.Empty()
	z := variable.Empty()
	if lx.peek().kind == kindPipe {
		lx.next()
		do, z, err = parseRHS(lx)
		if err != nil {
			return nil, err
		}
	}
	if err := expectKind(lx, kindRParen); err != nil {
		return nil, err
	}
	p, err := expr.NewP(y, do, z)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// parseRHS parses the comma-separated mixture of "do(V)" intervention
// items and bare conditioning variables that may follow P's "|".
func parseRHS(lx *lexer) (do, z variable.Set, err error) {
	do, z = variable.Empty(), variable.Empty()
	for {
		tok := lx.peek()
		if tok.kind == kindWord && tok.text == "do" {
			lx.next()
			if err := expectKind(lx, kindLParen); err != nil {
				return variable.Empty(), variable.Empty(), err
			}
			v, err := parseVariable(lx)
			if err != nil {
				return variable.Empty(), variable.Empty(), err
			}
			if err := expectKind(lx, kindRParen); err != nil {
				return variable.Empty(), variable.Empty(), err
			}
			do = do.Add(v)
		} else {
			v, err := parseVariable(lx)
			if err != nil {
				return variable.Empty(), variable.Empty(), err
			}
			z = z.Add(v)
		}
		if lx.peek().kind == kindComma {
			lx.next()
			continue
		}
		break
	}
	return do, z, nil
}

// parseMarginalization parses "E[" ... ";" ... "]" having already
// consumed the "E" word token.
func parseMarginalization(lx *lexer) (expr.Expression, error) {
	if err := expectKind(lx, kindLBracket); err != nil {
		return nil, err
	}
	inner, err := parseExpr(lx)
	if err != nil {
		return nil, err
	}
	if err := expectKind(lx, kindSemicolon); err != nil {
		return nil, err
	}
	margins, err := parseVariableList(lx)
	if err != nil {
		return nil, err
	}
	if err := expectKind(lx, kindRBracket); err != nil {
		return nil, err
	}
	return expr.NewMarginalization(inner, margins)
}

// parseVariableList parses a comma-separated list of variable names,
// returning the empty set when the next token cannot start one (e.g. an
// empty Y_RULE, or margins of "E[expr;]").
func parseVariableList(lx *lexer) (variable.Set, error) {
	out := variable.Empty()
	if lx.peek().kind != kindWord {
		return out, nil
	}
	v, err := parseVariable(lx)
	if err != nil {
		return variable.Empty(), err
	}
	out = out.Add(v)
	for lx.peek().kind == kindComma {
		lx.next()
		v, err := parseVariable(lx)
		if err != nil {
			return variable.Empty(), err
		}
		out = out.Add(v)
	}
	return out, nil
}

func parseVariable(lx *lexer) (variable.Variable, error) {
	tok := lx.next()
	if tok.kind != kindWord {
		return variable.Variable{}, fmt.Errorf("%w: expected variable name, got %q", ErrUnexpectedToken, tok.text)
	}
	return variable.New(tok.text)
}

func expectKind(lx *lexer, k kind) error {
	tok := lx.next()
	if tok.kind == kindEOF {
		return ErrUnexpectedEOF
	}
	if tok.kind != k {
		return fmt.Errorf("%w: %q", ErrUnexpectedToken, tok.text)
	}
	return nil
}
