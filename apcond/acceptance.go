package apcond

// AcceptanceSet denotes a subset of an automaton's generalized acceptance
// conditions. Like Cond it is an opaque, value-typed bitmask — here over
// acceptance-condition indices rather than AP minterms — cheap to copy and
// structurally comparable.
type AcceptanceSet struct {
	bits uint64
}

// NoAcceptance is the empty acceptance set.
func NoAcceptance() AcceptanceSet { return AcceptanceSet{} }

// FullAcceptance returns the acceptance set containing every condition in
// [0, n).
func FullAcceptance(n int) AcceptanceSet {
	if n <= 0 {
		return AcceptanceSet{}
	}
	return AcceptanceSet{bits: (uint64(1) << uint(n)) - 1}
}

// AcceptanceOf builds the acceptance set containing exactly the given
// condition indices.
func AcceptanceOf(indices ...int) AcceptanceSet {
	var a AcceptanceSet
	for _, i := range indices {
		a.bits |= 1 << uint(i)
	}
	return a
}

// And returns the conjunction (set intersection) of a and o.
func (a AcceptanceSet) And(o AcceptanceSet) AcceptanceSet {
	return AcceptanceSet{bits: a.bits & o.bits}
}

// Equal reports whether a and o denote the same subset.
func (a AcceptanceSet) Equal(o AcceptanceSet) bool { return a.bits == o.bits }

// Empty reports whether a is the empty acceptance set.
func (a AcceptanceSet) Empty() bool { return a.bits == 0 }

// Subsumes reports whether a is at least as strong an acceptance witness as
// o, i.e. a ∧ o == o (every condition o asks for, a also asks for). This is
// the test the SLOG weaker-self-loop closure keys on.
func (a AcceptanceSet) Subsumes(o AcceptanceSet) bool {
	return a.And(o).Equal(o)
}
