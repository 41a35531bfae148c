// Package adjust implements the adjustment-set generator of spec.md
// §4.D: given a path collection, a current conditioning set, and a
// latent set, it streams sufficient blocking sets in minimal-overlap
// order without claiming minimum cardinality.
//
// What:
//
//   - Generator: a lazy iterator over sufficient adjustment sets, built
//     from a candidate-ranking, Cartesian-combination, and
//     full-coverage-check pipeline.
//   - BackdoorSets: Generator seeded with dsep.BackdoorPaths(X, Y).
//   - MediationSets: Generator seeded with dsep.CausalPaths(X, Y).
//
// The generator is pull-based (a Next method, not a goroutine feeding a
// channel) because every candidate set is small and the teacher's own
// packages never reach for a channel to stream bounded, in-memory
// results; Next still accepts a context so a caller driving a long
// identification search can cancel cooperatively between combinations,
// per spec.md §5.
package adjust
