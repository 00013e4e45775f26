package product

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
)

// Cursor lazily enumerates the outgoing transitions of one product state:
// a single-pass, externally driven state machine following the same
// First/Next/Done/Current protocol as automaton.SuccIter and
// apenum.Enumerator. Each position exposes the destination state, the
// edge's AP condition, and the edge's acceptance-condition set.
//
// Within one traversal the emitted sequence is deterministic
// (left-iterator order × AP-enumeration order, divergence first); two
// cursors over equal states emit identical sequences whenever the
// automaton's own iterator is deterministic. Dropping a cursor
// mid-iteration is legal — it holds no resources beyond its left iterator
// and AP enumerator, both unreachable (and collectable) with it.
type Cursor interface {
	// First positions the cursor at the first transition, if any.
	First()
	// Next advances to the following transition.
	Next()
	// Done reports whether every transition has been produced.
	Done() bool
	// Current returns the transition at the current position. The
	// destination State is a fresh clone owned by the caller. Calling
	// Current when Done is a contract violation.
	Current() (dest State, cond apcond.Cond, acc apcond.AcceptanceSet)
	// LeftIterator exposes the underlying automaton iterator this cursor
	// drives, for transition annotation by Graph.TransitionAnnotation.
	// Nil for cursors with no automaton component (the divergence
	// self-loop cursor).
	LeftIterator() automaton.SuccIter
}
