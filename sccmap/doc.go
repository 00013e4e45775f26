// Package sccmap maps each strongly-connected component of a Büchi
// automaton to the conjunction of atomic-proposition variables mentioned
// on any edge reachable from any state of that SCC. The map is built once,
// immutably, right after the automaton is available; the DSOG successor
// engine (package product) uses it to narrow AP enumeration to only the
// variables that can still influence acceptance from the current automaton
// state's SCC.
//
// The decomposition is Tarjan's algorithm in the classic explicit
// low-link-array-and-stack form, run over the subgraph reachable from the
// automaton's initial state.
//
// BuildMode selects how aggressively the map narrows: Off disables the
// reduction entirely, handing every SCC the full variable universe (the
// DSOG AP split then degenerates to enumerating every registered variable
// at every state); Standard and Full both compute the precise per-SCC
// closure. Full is kept as a distinct, named mode so a future tightening
// has somewhere to live without an API break.
package sccmap
