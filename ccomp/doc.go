// Package ccomp implements spec.md §4.E: bidirected-edge connectivity
// among observed variables, maximal c-components, and the (F, F') hedge
// witness that is the complete obstruction to identifiability.
//
// A bidirected edge connects two observed variables whenever a latent
// variable is a parent of both, extended transitively through chains of
// latents confounding further latents. A c-component is an equivalence
// class of this connectivity restricted to a (possibly restricted)
// graph's observed vertex set.
//
// Bidirected connectivity is recomputed here with its own union-find
// rather than reusing graph's internal one (graph.latentChainClasses is
// unexported, and ccomp only ever needs graph.Graph's exported
// accessors — Variables, Observed, Latents, Equations, Ancestors), per
// the teacher's convention of algorithm packages depending on a graph's
// public surface, not its internals.
package ccomp
