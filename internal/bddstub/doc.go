// Package bddstub is a minimal in-memory stand-in for a decision-diagram
// engine: a finite explicit-state system model realizing
// engine.SymbolicEngine, engine.Aggregate and engine.Transition well
// enough to drive the product package's SLOG/DSOG engines, without a real
// SDD/DDD library.
//
// Aggregates are bitsets over a small, fixed universe of system state
// indices. A real ROBDD/DDD engine interns structurally-equal nodes behind
// a single shared handle so that pointer/id equality coincides with
// structural equality; this stub reproduces that behavior with a
// unique-table keyed by bitset content, handing out a uuid identity the
// first time a given content is seen and reusing it afterward (see
// Model.intern).
package bddstub
