package demo

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/internal/bddstub"
)

// Fixture pairs a demo automaton with a bddstub system model over a shared
// dictionary, ready to hand to product.New.
type Fixture struct {
	Aut   *Automaton
	Model *bddstub.Model
	Dict  *apcond.Dictionary
}

func mustDict(names ...string) *apcond.Dictionary {
	d, err := apcond.NewDictionary(names...)
	if err != nil {
		panic(err)
	}
	return d
}

// Live is the trivial live wiring: a two-state Büchi cycle
// q0 --true/{a}--> q1 --true/{a}--> q0 over a one-state system with a
// self-loop. The PlainSOG and SLOG products have an accepting cycle; under
// DSOG every system step is silent, the observable-successor aggregate is
// empty and the initial state has no successors (see LiveObservable).
func Live() Fixture {
	d := mustDict("p")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	acc := apcond.FullAcceptance(1)
	a.AddEdge(q0, q1, apcond.True(d), acc)
	a.AddEdge(q1, q0, apcond.True(d), acc)

	p, _ := d.Var("p")
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{
			{Valuation: map[apcond.VarID]bool{p: false}},
		},
		[][]int{{0}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// LiveObservable is the observable twin of Live for the DSOG variant: the
// automaton watches p (q0 --p--> q1 --!p--> q0) and the system alternates
// its p valuation, so every system step is observable and the product
// cycles through regular states instead of collapsing into one silent
// aggregate.
func LiveObservable() Fixture {
	d := mustDict("p")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	acc := apcond.FullAcceptance(1)
	p, _ := d.Var("p")
	a.AddEdge(q0, q1, apcond.Literal(d, p, true), acc)
	a.AddEdge(q1, q0, apcond.Literal(d, p, false), acc)

	pv := func(v bool) bddstub.StateDef {
		return bddstub.StateDef{Valuation: map[apcond.VarID]bool{p: v}}
	}
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{pv(true), pv(false)},
		[][]int{{1}, {0}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// SilentDivergence wires a one-state Büchi self-loop over a system whose
// two states cycle without any AP change — an internal divergence. With
// accepting set, the self-loop carries the full acceptance set and the
// DSOG product emits the divergence meta-state; without, divergence
// emission is skipped entirely.
func SilentDivergence(accepting bool) Fixture {
	d := mustDict("p")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	acc := apcond.NoAcceptance()
	if accepting {
		acc = apcond.FullAcceptance(1)
	}
	a.AddEdge(q0, q0, apcond.True(d), acc)

	p, _ := d.Var("p")
	silent := bddstub.StateDef{Valuation: map[apcond.VarID]bool{p: false}}
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{silent, silent},
		[][]int{{1}, {0}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// APSplit mentions two atomic propositions in the SCC reachable from the
// initial automaton state, so DSOG successor enumeration splits over four
// valuations — of which only those with a matching system state survive.
// System: 0:(!p,!q) branches to 1:(p,!q) and 2:(!p,q); 1 self-loops, 2
// moves on to 3:(p,q).
func APSplit() Fixture {
	d := mustDict("p", "q")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	acc := apcond.FullAcceptance(1)
	p, _ := d.Var("p")
	q, _ := d.Var("q")
	a.AddEdge(q0, q1, apcond.True(d), acc)
	a.AddEdge(q1, q1, apcond.Literal(d, p, true), acc)
	a.AddEdge(q1, q1, apcond.Literal(d, q, true), acc)

	val := func(pv, qv bool) bddstub.StateDef {
		return bddstub.StateDef{Valuation: map[apcond.VarID]bool{p: pv, q: qv}}
	}
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{val(false, false), val(true, false), val(false, true), val(true, true)},
		[][]int{{1, 2}, {1}, {3}, {3}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// WeakerSelfLoop exercises the SLOG saturation: the edge q --true/{a}--> q1
// is followed at q1 by a self-loop on p with empty acceptance (weaker), so
// the successor aggregate must close over the whole p-satisfying chain
// 1 → 2 → 3 of the system.
func WeakerSelfLoop() Fixture {
	d := mustDict("p")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q")
	q1 := a.AddState("q1")
	p, _ := d.Var("p")
	a.AddEdge(q0, q1, apcond.True(d), apcond.FullAcceptance(1))
	a.AddEdge(q1, q1, apcond.Literal(d, p, true), apcond.NoAcceptance())

	pv := func(v bool) bddstub.StateDef {
		return bddstub.StateDef{Valuation: map[apcond.VarID]bool{p: v}}
	}
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{pv(true), pv(true), pv(true), pv(false)},
		[][]int{{1}, {2}, {3}, {3}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// EdgeSkip has one automaton edge whose entry aggregate is empty (no
// system successor satisfies p) next to one that is not: the cursor must
// skip the first silently and emit only the second.
func EdgeSkip() Fixture {
	d := mustDict("p")
	a := NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	acc := apcond.FullAcceptance(1)
	p, _ := d.Var("p")
	a.AddEdge(q0, q1, apcond.Literal(d, p, true), acc)
	a.AddEdge(q0, q1, apcond.Literal(d, p, false), acc)
	a.AddEdge(q1, q1, apcond.True(d), acc)

	pv := func(v bool) bddstub.StateDef {
		return bddstub.StateDef{Valuation: map[apcond.VarID]bool{p: v}}
	}
	m := bddstub.NewModel(d,
		[]bddstub.StateDef{pv(false), pv(false)},
		[][]int{{1}, {1}},
		1<<0,
	)
	return Fixture{Aut: a, Model: m, Dict: d}
}

// Fixtures maps scenario names to their constructors, for the sogdump CLI.
func Fixtures() map[string]func() Fixture {
	return map[string]func() Fixture{
		"live":      Live,
		"live-obs":  LiveObservable,
		"div-noacc": func() Fixture { return SilentDivergence(false) },
		"div-acc":   func() Fixture { return SilentDivergence(true) },
		"split":     APSplit,
		"weaker":    WeakerSelfLoop,
		"skip":      EdgeSkip,
	}
}
