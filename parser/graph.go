package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-causalid/causalid/graph"
	"github.com/go-causalid/causalid/variable"
)

// tokenSplitter separates graph-language statements on ";" or a newline,
// mirroring original_source/graph.py's `re.split(r"[;\r\n]", g)`.
var tokenSplitter = regexp.MustCompile(`[;\r\n]`)

// ParseGraph parses spec.md §6's graph mini-language: tokens separated
// by ";" or a newline, each either a comma-separated list of standalone
// variable declarations or an edge "A,B,C->Y" (equivalently
// "Y<-A,B,C"). latents names the subset of the declared variables that
// are unobserved, since the graph text syntax itself carries no latent
// marker — a caller combining ParseGraph's output with a separately
// supplied latent set matches spec.md §6's identify(query, graph,
// latents) three-argument shape.
func ParseGraph(s string, latents variable.Set) (*graph.Graph, error) {
	vars := variable.Empty()
	parents := make(map[string]variable.Set)
	order := make(map[string]variable.Variable)

	declare := func(v variable.Variable) {
		vars = vars.Add(v)
		order[v.Name()] = v
	}

	for _, raw := range tokenSplitter.Split(s, -1) {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}

		hasForward := strings.Contains(tok, "->")
		hasBackward := strings.Contains(tok, "<-")
		if hasForward && hasBackward {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, tok)
		}

		switch {
		case hasBackward:
			parts := strings.SplitN(tok, "<-", 2)
			rhs, params := parts[0], parts[1]
			outcome, err := parseName(rhs)
			if err != nil {
				return nil, err
			}
			declare(outcome)
			ps, err := parseNameList(params)
			if err != nil {
				return nil, err
			}
			for _, p := range ps {
				declare(p)
			}
			parents[outcome.Name()] = parents[outcome.Name()].Union(variable.Of(ps...))

		case hasForward:
			parts := strings.SplitN(tok, "->", 2)
			params, rhs := parts[0], parts[1]
			outcome, err := parseName(rhs)
			if err != nil {
				return nil, err
			}
			declare(outcome)
			ps, err := parseNameList(params)
			if err != nil {
				return nil, err
			}
			for _, p := range ps {
				declare(p)
			}
			parents[outcome.Name()] = parents[outcome.Name()].Union(variable.Of(ps...))

		default:
			ps, err := parseNameList(tok)
			if err != nil {
				return nil, err
			}
			for _, p := range ps {
				declare(p)
			}
		}
	}

	equations := make([]graph.StructuralEquation, 0, len(parents))
	for name, ps := range parents {
		equations = append(equations, graph.StructuralEquation{X: ps, Y: order[name]})
	}

	return graph.New(vars, equations, latents)
}

func parseName(raw string) (variable.Variable, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return variable.Variable{}, ErrEmptyDeclaration
	}
	return variable.New(name)
}

func parseNameList(raw string) ([]variable.Variable, error) {
	parts := strings.Split(raw, ",")
	out := make([]variable.Variable, 0, len(parts))
	for _, p := range parts {
		v, err := parseName(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
