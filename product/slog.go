package product

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
	"github.com/yanntm/its-ltl-core/engine"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// slogCursor enumerates the SLOG (and PlainSOG) successors of a regular
// product state (q, G): for each automaton edge q → q' with label
// (cond, ac), the one-step entry aggregate succSatisfying(G, cond) is
// saturated under the AP conditions of q's successors that the automaton
// would self-absorb at q' — self-loops q' → q' whose acceptance is
// subsumed by ac. Edges whose aggregate comes out empty are skipped, never
// emitted; the cursor is done exactly when the left iterator is.
type slogCursor struct {
	g     *Graph
	left  automaton.SuccIter // owned
	right engine.Aggregate   // source aggregate
	dest  engine.Aggregate   // successor aggregate at the current position
}

func newSLOGCursor(g *Graph, s *RegularState) *slogCursor {
	return &slogCursor{
		g:     g,
		left:  g.aut.SuccIter(s.left),
		right: s.right,
	}
}

// weakerSelfLoopAP computes F, the disjunction of conditions of the
// destination state's self-loops whose acceptance is subsumed by the
// current edge's acceptance (ac ∧ ac' = ac'): transitions the automaton
// would absorb at q' without changing the acceptance outcome, so the
// aggregate may silently close over them.
func (c *slogCursor) weakerSelfLoopAP() apcond.Cond {
	_, ac, q2 := c.left.Current()

	F := apcond.False(c.g.dict)
	it := c.g.aut.SuccIter(q2)
	for it.First(); !it.Done(); it.Next() {
		cond, acPrime, dest := it.Current()
		if dest.Compare(q2) == 0 && ac.Subsumes(acPrime) {
			F = F.Or(cond)
		}
	}
	return F
}

// step computes the successor aggregate for the current automaton edge:
// progress to the entry states, then — unless the entry set is already
// empty, or the variant is PlainSOG — saturate under the weaker-self-loop
// conditions.
func (c *slogCursor) step() {
	cond, _, _ := c.left.Current()
	c.dest = c.g.eng.SuccSatisfying(c.right, cond)

	if c.dest.IsEmpty() {
		return
	}

	F := apcond.False(c.g.dict)
	if c.g.variant != PlainSOG {
		F = c.weakerSelfLoopAP()
	}
	c.dest = c.g.eng.LeastPreTestFixpoint(c.dest, F)
}

// nextNonFalse advances the left iterator until an edge with a non-empty
// successor aggregate is found, or the iterator is exhausted.
func (c *slogCursor) nextNonFalse() {
	for !c.left.Done() {
		c.step()
		if !c.dest.IsEmpty() {
			return
		}
		c.left.Next()
	}
}

// First positions the cursor at the first non-empty successor.
func (c *slogCursor) First() {
	c.left.First()
	c.nextNonFalse()
}

// Next advances past the current position to the following non-empty
// successor.
func (c *slogCursor) Next() {
	c.left.Next()
	c.nextNonFalse()
}

// Done reports exhaustion: the cursor is done iff the left iterator is.
func (c *slogCursor) Done() bool {
	return c.left.Done()
}

// Current returns the transition at the current position: destination
// (q', G'), with condition and acceptance inherited from the automaton
// edge.
func (c *slogCursor) Current() (State, apcond.Cond, apcond.AcceptanceSet) {
	assertpkg.Invariant(!c.Done(), "product: Current called on a done cursor")
	cond, acc, target := c.left.Current()
	return newSLOGState(target.Clone(), c.dest, c.g.dict), cond, acc
}

// LeftIterator exposes the underlying automaton iterator.
func (c *slogCursor) LeftIterator() automaton.SuccIter { return c.left }
