// Package product implements the on-the-fly generalized Büchi product at
// the center of this module: the composition of an external Büchi automaton
// (package automaton) with a symbolic state-space representation of a
// concurrent system (package engine), exposed as a lazily-iterated
// transition graph whose emptiness decides an LTL verification question.
//
// Key features:
//   - New(aut, eng, variant, opts...): construct a product Graph for one of
//     the PlainSOG / SLOG / DSOG variants (FSLTL is rejected — out of scope)
//   - Graph.InitialState / Graph.Successors: the pull interface an external
//     emptiness checker drives; nothing is stored, memory stays bounded by
//     the checker's frontier
//   - State: the tagged product-state sum type — RegularState (automaton
//     state × aggregate) and, in DSOG, DivergenceState (a singleton labeled
//     by an AP condition) — with the hash/compare/clone identity contract
//   - Cursor: a lazy, single-pass, deterministic enumerator of one state's
//     outgoing transitions (destination, AP condition, acceptance set)
//
// The SLOG successor engine saturates each successor aggregate under the
// transitions the automaton would self-absorb at the destination state (the
// weaker-self-loop closure); the DSOG engine additionally detects internal
// divergence (infinite silent cycles), emits a distinguished divergence
// meta-state when the automaton accepts it, and splits successors per AP
// valuation using the SCC-AP map (package sccmap) to keep the split narrow.
//
// Complexity:
//
//   - Time:   each cursor position costs one automaton edge plus the
//     engine's fixpoint work; nothing is amortized across cursors.
//   - Memory: O(1) product states per live cursor; no visited-set storage.
//
// Concurrency: single-threaded cooperative pull, matching the underlying
// decision-diagram engine's own single-threaded model. A Graph must not be
// shared between goroutines.
//
// Errors:
//
//   - ErrNilAutomaton / ErrNilEngine    if a collaborator is missing.
//   - ErrUnsupportedVariant             for FSLTL or an unknown Variant.
//
// In-flow invariant breaches (a foreign State implementation handed to
// Successors, a forbidden empty aggregate, no AP valuation satisfying the
// initial aggregate) are contract violations and panic; see package
// assertpkg.
package product
