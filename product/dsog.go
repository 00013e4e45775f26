package product

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/apenum"
	"github.com/yanntm/its-ltl-core/automaton"
	"github.com/yanntm/its-ltl-core/engine"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// dsogCursor enumerates the DSOG successors of a regular product state.
// Two concerns interleave, realized as an explicit tagged state machine
// (pre-divergence / AP-split-active / exhausted):
//
//   - Divergence emission: if the source aggregate diverges and the
//     automaton state carries a self-loop with the full acceptance set
//     whose condition subsumes the state's own, the first emitted
//     successor is the divergence meta-state DIV(true), on an edge labeled
//     true with the full acceptance set.
//   - AP-split normal successors: for each automaton edge subsuming the
//     state's condition, successors of the precomputed observable
//     aggregate are split per AP valuation over the destination SCC's
//     variable set; valuations whose saturated aggregate is empty are
//     skipped, never emitted.
//
// The divergence scan exits on the first qualifying self-loop rather than
// draining the left iterator: the drain would only matter for automata
// whose iterators have enumeration side-effects.
type dsogCursor struct {
	g          *Graph
	hasDiv     bool              // pending divergence emission (or scan)
	cur        *RegularState     // source state (borrowed)
	leftIter   automaton.SuccIter // owned
	dest       *RegularState     // destination at the current position
	succStates engine.Aggregate  // source's precomputed observable successors
	itap       *apenum.Enumerator // AP enumerator for the current edge, nil between edges
}

func newDSOGCursor(g *Graph, s *RegularState) *dsogCursor {
	return &dsogCursor{
		g:          g,
		hasDiv:     s.div,
		cur:        s,
		leftIter:   g.aut.SuccIter(s.left),
		succStates: s.succ,
	}
}

// First resolves the pending divergence emission, then falls through to
// normal successor enumeration when there is none.
func (c *dsogCursor) First() {
	if c.hasDiv {
		c.hasDiv = false
		// The aggregate diverges; divergence is emitted only if the left
		// state carries a self-loop labeled by the full acceptance set
		// whose condition subsumes the state's cond.
		cond := c.cur.cond
		for c.leftIter.First(); !c.leftIter.Done(); c.leftIter.Next() {
			econd, eacc, dest := c.leftIter.Current()
			if dest.Compare(c.cur.left) == 0 &&
				eacc.Equal(c.g.allAcc) &&
				cond.Implies(econd) {
				c.hasDiv = true
				break
			}
		}
	}
	if !c.hasDiv {
		c.hasDiv = true
		c.Next()
	}
}

// Next advances past the current position: off the divergence emission on
// the first call after it, then through the AP-split enumeration, moving
// the left iterator each time a split is exhausted.
func (c *dsogCursor) Next() {
	if c.hasDiv {
		c.leftIter.First()
		c.hasDiv = false

		if c.leftIter.Done() {
			return
		}
		if c.succStates.IsEmpty() {
			// No observable successor at all: exhaust the left iterator so
			// Done() reports true.
			for !c.leftIter.Done() {
				c.leftIter.Next()
			}
			return
		}
	}

	for {
		// 1. Advance within the active split; on exhaustion move to the
		// next automaton edge.
		if c.itap != nil {
			if !c.itap.Done() {
				c.itap.Next()
			}
			if c.itap.Done() {
				c.leftIter.Next()
				c.itap = nil
				if c.leftIter.Done() {
					return
				}
			}
		}

		// 2. Open a split at the next edge subsuming the state's cond.
		if c.itap == nil {
			cond := c.cur.cond
			for {
				econd, _, _ := c.leftIter.Current()
				if cond.Implies(econd) {
					break
				}
				c.leftIter.Next()
				if c.leftIter.Done() {
					return
				}
			}

			_, _, target := c.leftIter.Current()
			ap := c.g.sccAP.APOf(target)
			vars := ap.Variables()

			c.itap = apenum.New(c.g.dict, vars)
			c.itap.First()

			// Nothing to split: a single successor under true.
			if len(vars) == 0 {
				c.itap.Next() // consume the lone true conjunction
				c.dest = newDSOGState(target.Clone(), c.g.eng, c.succStates, apcond.True(c.g.dict))
				assertpkg.Invariant(!c.dest.right.IsEmpty(), "product: unsplit successor aggregate is empty")
				return
			}
		}

		// 3. Iterate valuations until a non-empty successor is found (or
		// the split is exhausted and the outer loop re-enters step 1).
		for ; !c.itap.Done(); c.itap.Next() {
			_, _, target := c.leftIter.Current()
			d := newDSOGState(target.Clone(), c.g.eng, c.succStates, c.itap.Current())
			if !d.right.IsEmpty() {
				c.dest = d
				return
			}
			d.Release()
		}
	}
}

// Done reports exhaustion: never while a divergence emission is pending,
// otherwise when the left iterator is done.
func (c *dsogCursor) Done() bool {
	if c.hasDiv {
		return false
	}
	return c.leftIter.Done()
}

// Current returns the transition at the current position. The divergence
// emission is DIV(true) under condition true with the full acceptance set;
// normal positions yield the precomputed destination under condition true
// with the automaton edge's acceptance set. (The edge condition is true in
// both cases: the destination state itself carries the AP valuation, so
// the product edge has nothing further to constrain.)
func (c *dsogCursor) Current() (State, apcond.Cond, apcond.AcceptanceSet) {
	assertpkg.Invariant(!c.Done(), "product: Current called on a done cursor")
	if c.hasDiv {
		return NewDivergenceState(apcond.True(c.g.dict)), apcond.True(c.g.dict), c.g.allAcc
	}
	_, acc, _ := c.leftIter.Current()
	return c.dest.Clone(), apcond.True(c.g.dict), acc
}

// LeftIterator exposes the underlying automaton iterator.
func (c *dsogCursor) LeftIterator() automaton.SuccIter { return c.leftIter }

// divCursor is the successor cursor of a divergence meta-state DIV(c):
// exactly one transition, a self-edge back to DIV(c) labeled by c with the
// full acceptance set, then done. This closes the structure — an emptiness
// checker sees an accepting self-loop precisely when the underlying
// aggregate genuinely diverges under an accepted AP valuation.
type divCursor struct {
	cond    apcond.Cond
	acc     apcond.AcceptanceSet
	visited bool
}

func newDivCursor(cond apcond.Cond, acc apcond.AcceptanceSet) *divCursor {
	return &divCursor{cond: cond, acc: acc, visited: true} // done until First
}

// First positions the cursor on its single transition.
func (c *divCursor) First() { c.visited = false }

// Next exhausts the cursor.
func (c *divCursor) Next() {
	assertpkg.Invariant(!c.Done(), "product: Next called on a done cursor")
	c.visited = true
}

// Done reports whether the single transition has been consumed.
func (c *divCursor) Done() bool { return c.visited }

// Current returns the self-edge back to DIV(cond).
func (c *divCursor) Current() (State, apcond.Cond, apcond.AcceptanceSet) {
	assertpkg.Invariant(!c.Done(), "product: Current called on a done cursor")
	return NewDivergenceState(c.cond), c.cond, c.acc
}

// LeftIterator returns nil: a divergence self-loop has no automaton edge.
func (c *divCursor) LeftIterator() automaton.SuccIter { return nil }
