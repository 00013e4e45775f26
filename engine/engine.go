// Package engine declares the capability set this module requires of an
// external symbolic engine over a system's state space: an aggregate
// handle for sets of concrete system states, one-step and fixpoint
// transition application, and divergence detection. The decision-diagram
// representation itself lives outside this module; this package only fixes
// the contract the SLOG/DSOG successor engines are written against.
package engine

import "github.com/yanntm/its-ltl-core/apcond"

// Aggregate is a decision-diagram handle representing a set of concrete
// system states. It is value-typed: equality is structural, and a
// distinguished null aggregate (IsEmpty) denotes the empty set.
type Aggregate interface {
	// IsEmpty reports whether this aggregate denotes the null/empty state set.
	IsEmpty() bool
	// Equal reports structural equality with another Aggregate.
	Equal(other Aggregate) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
	// Ordinal returns a stable surrogate for this aggregate's identity,
	// totally ordered and consistent with Equal: equal aggregates share an
	// ordinal, distinct aggregates never do. A decision-diagram engine
	// gets this for free from its unique-table node pointer; exposing it
	// here is what lets product states carry a total order without the
	// core knowing anything about the representation.
	Ordinal() uint64
	// NbStates reports the number of concrete states represented, for
	// diagnostics.
	NbStates() uint64
}

// Transition is a one-step (or fixpoint) relation over Aggregates. It
// composes algebraically (And, Not) the way a BDD-encoded relation would —
// enough to build "(¬selector(cond)) ∧ nextRel" before applying it to an
// aggregate.
type Transition interface {
	// Apply returns the image of g under this transition.
	Apply(g Aggregate) Aggregate
	// And returns the conjunction (intersection) of this transition with other.
	And(other Transition) Transition
	// Not returns the complement of this transition over the full relation space.
	Not() Transition
}

// SymbolicEngine is the full capability set the product construction needs
// from the system's symbolic state-space representation.
type SymbolicEngine interface {
	// GetInitialState returns the model's initial aggregate. Never empty.
	GetInitialState() Aggregate
	// Empty returns the distinguished null aggregate.
	Empty() Aggregate
	// GetSelector returns the transition that restricts an aggregate to
	// the subset of states whose AP valuation satisfies c.
	GetSelector(c apcond.Cond) Transition
	// GetNextRel returns the one-step system transition relation.
	GetNextRel() Transition
	// SuccSatisfying returns the one-step successors of g whose
	// post-valuation satisfies c.
	SuccSatisfying(g Aggregate, c apcond.Cond) Aggregate
	// LeastPreTestFixpoint closes g under transitions fired from
	// c-satisfying states (the SLOG saturation).
	LeastPreTestFixpoint(g Aggregate, c apcond.Cond) Aggregate
	// LeastPostTestFixpoint restricts g to c-satisfying states and closes
	// under transitions whose post-valuation satisfies c (the DSOG
	// saturation).
	LeastPostTestFixpoint(g Aggregate, c apcond.Cond) Aggregate
	// GetDivergent returns the subset of g lying on an infinite c-labeled
	// silent cycle ("divergence"), or the empty aggregate if none exists.
	GetDivergent(g Aggregate, c apcond.Cond) Aggregate
}
