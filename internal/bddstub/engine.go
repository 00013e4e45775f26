package bddstub

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/engine"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// Transition is bddstub's engine.Transition: a one-step-or-not flag plus a
// post-state filter condition. The only algebra the product core ever
// composes is "(¬selector(cond)) ∧ nextRel" — a selector negation conjoined
// with the step relation — and this two-field shape covers exactly that:
// And merges the step flags and conjoins the filters, Not flips a pure
// selector's filter.
type Transition struct {
	model  *Model
	step   bool        // whether the one-step relation participates
	filter apcond.Cond // post-state restriction
}

// Apply returns the image of g under this transition: g stepped once if the
// step relation participates, then restricted to filter-satisfying states.
func (t Transition) Apply(g engine.Aggregate) engine.Aggregate {
	a := t.model.mustOwn(g)
	bits := a.bits
	if t.step {
		bits = t.model.stepBits(bits)
	}
	return t.model.intern(t.model.filterBits(bits, t.filter))
}

// And returns the conjunction of t with other.
func (t Transition) And(other engine.Transition) engine.Transition {
	o, ok := other.(Transition)
	assertpkg.Invariant(ok && o.model == t.model, "bddstub: Transition.And operand from a different engine")
	return Transition{model: t.model, step: t.step || o.step, filter: t.filter.And(o.filter)}
}

// Not complements a selector. Negating a transition that involves the step
// relation has no meaning in this stub and is a contract violation.
func (t Transition) Not() engine.Transition {
	assertpkg.Invariant(!t.step, "bddstub: Transition.Not on a step relation")
	return Transition{model: t.model, filter: t.filter.Not()}
}

// mustOwn narrows g to this model's Aggregate, panicking on a foreign handle.
func (m *Model) mustOwn(g engine.Aggregate) Aggregate {
	a, ok := g.(Aggregate)
	assertpkg.Invariant(ok && a.model == m, "bddstub: aggregate from a different engine")
	return a
}

// AggregateOf builds the aggregate containing exactly the given state
// indices. Test and demo scaffolding: the product core itself only ever
// receives aggregates from the engine's own operations.
func (m *Model) AggregateOf(indices ...int) Aggregate {
	var bits uint64
	for _, i := range indices {
		bits |= 1 << uint(i)
	}
	return m.intern(bits)
}

// GetInitialState returns the model's initial aggregate.
func (m *Model) GetInitialState() engine.Aggregate { return m.intern(m.init) }

// Empty returns the distinguished null aggregate.
func (m *Model) Empty() engine.Aggregate { return m.intern(0) }

// GetSelector returns the transition restricting an aggregate to the states
// whose AP valuation satisfies c.
func (m *Model) GetSelector(c apcond.Cond) engine.Transition {
	return Transition{model: m, filter: c}
}

// GetNextRel returns the one-step system transition relation.
func (m *Model) GetNextRel() engine.Transition {
	return Transition{model: m, step: true, filter: apcond.True(m.dict)}
}

// SuccSatisfying returns the one-step successors of g whose post-valuation
// satisfies c.
func (m *Model) SuccSatisfying(g engine.Aggregate, c apcond.Cond) engine.Aggregate {
	a := m.mustOwn(g)
	return m.intern(m.filterBits(m.stepBits(a.bits), c))
}

// LeastPreTestFixpoint closes g under transitions fired from c-satisfying
// members (SLOG saturation).
func (m *Model) LeastPreTestFixpoint(g engine.Aggregate, c apcond.Cond) engine.Aggregate {
	a := m.mustOwn(g)
	return m.intern(m.closePreTest(a.bits, c))
}

// LeastPostTestFixpoint restricts g to c-satisfying states and closes under
// transitions whose post-valuation satisfies c (DSOG saturation).
func (m *Model) LeastPostTestFixpoint(g engine.Aggregate, c apcond.Cond) engine.Aggregate {
	a := m.mustOwn(g)
	return m.intern(m.closePostTest(a.bits, c))
}

// GetDivergent returns the members of g lying on a silent cycle inside g
// whose every state satisfies c.
func (m *Model) GetDivergent(g engine.Aggregate, c apcond.Cond) engine.Aggregate {
	a := m.mustOwn(g)
	return m.intern(m.onCycle(a.bits, c))
}
