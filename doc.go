// Package itsltlcore is the core of a symbolic on-the-fly LTL model
// checker: the on-demand product of a generalized Büchi automaton with a
// decision-diagram-encoded system state space, exposed as a lazily
// iterated transition graph whose emptiness decides the verification
// question.
//
// 🚀 What is its-ltl-core?
//
//	An engine-agnostic product construction that brings together:
//
//	  • SLOG — the Symbolic Linear-time Observation Graph, saturating
//	    successor aggregates under automaton-absorbed AP conditions
//	  • DSOG — its divergence-aware extension, with explicit divergence
//	    meta-states and per-SCC atomic-proposition splitting
//	  • A pull interface emptiness checkers drive state by state, with
//	    no backing storage of the visited product
//
// Everything is organized under single-purpose packages:
//
//	apcond/    — APCondition & AcceptanceSet value types
//	apenum/    — lazy enumerator of AP conjunctions over a variable vector
//	automaton/ — the capability set required of the Büchi automaton
//	engine/    — the capability set required of the symbolic engine
//	sccmap/    — the per-SCC atomic-proposition map
//	product/   — product states, successor cursors, the graph facade
//	cmd/sogdump/ — a demo CLI walking the product of built-in fixtures
//
// The LTL parser, the LTL-to-Büchi translation, the emptiness-check
// algorithms, and the decision-diagram library itself are external
// collaborators reached only through the automaton and engine interfaces.
package itsltlcore
