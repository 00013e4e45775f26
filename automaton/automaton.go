// Package automaton declares the capability set this module requires of an
// external generalized Büchi automaton. The LTL-to-Büchi translation that
// produces such an automaton lives outside this module — this package is a
// pure interface boundary over state owned elsewhere.
package automaton

import "github.com/yanntm/its-ltl-core/apcond"

// State is an automaton state as the product core treats it: by capability
// only. The core never mutates a State; it clones on copy and releases on
// destruction.
type State interface {
	// Compare returns <0, 0, >0 establishing a total order consistent with
	// Equal-by-zero.
	Compare(other State) int
	// Hash returns a stable hash consistent with Compare returning 0.
	Hash() uint64
	// Clone returns an independent, equal copy.
	Clone() State
	// Release returns any resources held by this State. Implementations
	// backed by a real automaton engine may need this to drop a reference
	// count; in-memory implementations treat it as a no-op.
	Release()
}

// SuccIter enumerates the outgoing edges of one automaton state: a
// (condition, acceptance, target) position per edge, advanced with the
// same First/Next/Done/Current protocol the product cursors follow.
type SuccIter interface {
	First()
	Next()
	Done() bool
	// Current returns the edge at the current position: the condition
	// labeling it, its acceptance-condition set, and the destination
	// state. The target is borrowed — valid until the next advance; clone
	// it to keep it. Calling Current when Done is a contract violation.
	Current() (cond apcond.Cond, acc apcond.AcceptanceSet, target State)
}

// Automaton is the full capability set the product construction needs from
// the Büchi side.
type Automaton interface {
	// InitialState returns the automaton's single initial state.
	InitialState() State
	// SuccIter returns a fresh outgoing-edge iterator for s.
	SuccIter(s State) SuccIter
	// AllAcceptanceConditions returns the full acceptance-condition set.
	AllAcceptanceConditions() apcond.AcceptanceSet
	// NegAcceptanceConditions returns the complement acceptance-condition
	// set, kept alongside AllAcceptanceConditions so an emptiness checker
	// built on this core does not lose it.
	NegAcceptanceConditions() apcond.AcceptanceSet
	// FormatState renders s for diagnostics.
	FormatState(s State) string
	// ProjectState projects s onto target, if target is a component of a
	// larger composed automaton that embeds this one. Returns ok=false
	// when no such projection exists.
	ProjectState(s State, target Automaton) (state State, ok bool)
	// SupportConditions returns the disjunction of all conditions leaving s.
	SupportConditions(s State) apcond.Cond
	// SupportVariables returns the conjunction of all variables that occur
	// in any condition leaving s.
	SupportVariables(s State) apcond.Cond
	// TransitionAnnotation renders the edge it is currently positioned on,
	// for counterexample display. It must only be called with iterators
	// this automaton handed out, positioned on a live edge.
	TransitionAnnotation(it SuccIter) string
	// Dictionary returns the shared AP variable namespace.
	Dictionary() *apcond.Dictionary
}
