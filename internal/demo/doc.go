// Package demo supplies in-memory realizations of the product core's
// external collaborators: a concrete generalized Büchi automaton (standing
// in for an LTL-to-Büchi translator's output) and ready-made fixtures
// pairing such automata with bddstub system models — a live two-state
// cycle, silent divergence with and without acceptance, an AP-splitting
// wiring, a weaker-self-loop chain, and an empty-edge skip.
//
// Both the module's tests and cmd/sogdump drive the product package
// exclusively through these fixtures.
package demo
