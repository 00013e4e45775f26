package demo

import (
	"fmt"
	"strings"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// State is the demo automaton's automaton.State: a dense integer identity
// plus a display name. Release is a no-op — nothing here is reference
// counted.
type State struct {
	id   int
	name string
}

// Compare orders by identity.
func (s *State) Compare(other automaton.State) int {
	o, ok := other.(*State)
	assertpkg.Invariant(ok, "demo: Compare against a foreign automaton state")
	switch {
	case s.id < o.id:
		return -1
	case s.id > o.id:
		return 1
	default:
		return 0
	}
}

// Hash returns a mixed hash of the identity.
func (s *State) Hash() uint64 {
	h := uint64(s.id) * 0x9e3779b97f4a7c15
	h ^= h >> 29
	return h
}

// Clone returns an equal copy.
func (s *State) Clone() automaton.State { return &State{id: s.id, name: s.name} }

// Release is a no-op.
func (s *State) Release() {}

type edge struct {
	cond   apcond.Cond
	acc    apcond.AcceptanceSet
	target int
}

// Automaton is a finite, explicitly-stored generalized Büchi automaton
// implementing automaton.Automaton. States and edges are added up front;
// the automaton is then treated as immutable.
type Automaton struct {
	dict  *apcond.Dictionary
	names []string
	edges [][]edge
	init  int
	nAcc  int
}

// NewAutomaton builds an empty automaton over dict with nAcc generalized
// acceptance conditions. The first added state is initial unless
// SetInitial says otherwise.
func NewAutomaton(dict *apcond.Dictionary, nAcc int) *Automaton {
	return &Automaton{dict: dict, nAcc: nAcc}
}

// AddState registers a new state and returns its id.
func (a *Automaton) AddState(name string) int {
	a.names = append(a.names, name)
	a.edges = append(a.edges, nil)
	return len(a.names) - 1
}

// AddEdge registers the edge src → dst labeled (cond, acc).
func (a *Automaton) AddEdge(src, dst int, cond apcond.Cond, acc apcond.AcceptanceSet) {
	a.edges[src] = append(a.edges[src], edge{cond: cond, acc: acc, target: dst})
}

// SetInitial marks id as the initial state.
func (a *Automaton) SetInitial(id int) { a.init = id }

// StateAt returns a fresh handle on the state AddState returned id for.
func (a *Automaton) StateAt(id int) automaton.State {
	assertpkg.Invariant(id >= 0 && id < len(a.names), "demo: StateAt out of range")
	return &State{id: id, name: a.names[id]}
}

func (a *Automaton) mustOwn(s automaton.State) *State {
	st, ok := s.(*State)
	assertpkg.Invariant(ok && st.id < len(a.names), "demo: state from a foreign automaton")
	return st
}

// InitialState returns the initial state.
func (a *Automaton) InitialState() automaton.State {
	return &State{id: a.init, name: a.names[a.init]}
}

// SuccIter returns a fresh outgoing-edge iterator for s.
func (a *Automaton) SuccIter(s automaton.State) automaton.SuccIter {
	return &succIter{a: a, src: a.mustOwn(s).id}
}

// AllAcceptanceConditions returns the full acceptance set.
func (a *Automaton) AllAcceptanceConditions() apcond.AcceptanceSet {
	return apcond.FullAcceptance(a.nAcc)
}

// NegAcceptanceConditions returns the complement of the full set over the
// registered conditions — empty here, since the demo automaton registers
// every condition it mentions.
func (a *Automaton) NegAcceptanceConditions() apcond.AcceptanceSet {
	return apcond.NoAcceptance()
}

// FormatState renders the state's display name.
func (a *Automaton) FormatState(s automaton.State) string {
	return a.mustOwn(s).name
}

// ProjectState projects s onto target: onto this automaton it is a clone,
// onto anything else there is no projection.
func (a *Automaton) ProjectState(s automaton.State, target automaton.Automaton) (automaton.State, bool) {
	if t, ok := target.(*Automaton); ok && t == a {
		return s.Clone(), true
	}
	return nil, false
}

// SupportConditions returns the disjunction of all conditions leaving s.
func (a *Automaton) SupportConditions(s automaton.State) apcond.Cond {
	out := apcond.False(a.dict)
	for _, e := range a.edges[a.mustOwn(s).id] {
		out = out.Or(e.cond)
	}
	return out
}

// SupportVariables returns the conjunction of the variables occurring in
// any condition leaving s.
func (a *Automaton) SupportVariables(s automaton.State) apcond.Cond {
	seen := map[apcond.VarID]struct{}{}
	for _, e := range a.edges[a.mustOwn(s).id] {
		for _, v := range e.cond.Support() {
			seen[v] = struct{}{}
		}
	}
	out := apcond.True(a.dict)
	for _, v := range a.dict.Vars() {
		if _, ok := seen[v]; ok {
			out = out.And(apcond.Literal(a.dict, v, true))
		}
	}
	return out
}

// TransitionAnnotation renders the edge it is currently positioned on.
func (a *Automaton) TransitionAnnotation(it automaton.SuccIter) string {
	si, ok := it.(*succIter)
	assertpkg.Invariant(ok && si.a == a, "demo: iterator from a foreign automaton")
	assertpkg.Invariant(!si.Done(), "demo: TransitionAnnotation on a done iterator")
	e := a.edges[si.src][si.pos]
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s [%s]", a.names[si.src], a.names[e.target], e.cond)
	return b.String()
}

// Dictionary returns the shared AP variable namespace.
func (a *Automaton) Dictionary() *apcond.Dictionary { return a.dict }

// succIter walks one state's outgoing edges in insertion order, which
// keeps every product cursor traversal deterministic.
type succIter struct {
	a   *Automaton
	src int
	pos int
}

func (it *succIter) First() { it.pos = 0 }
func (it *succIter) Next()  { it.pos++ }
func (it *succIter) Done() bool {
	return it.pos >= len(it.a.edges[it.src])
}

// Current returns the edge at the current position; the target State is
// borrowed and valid until the next advance.
func (it *succIter) Current() (apcond.Cond, apcond.AcceptanceSet, automaton.State) {
	assertpkg.Invariant(!it.Done(), "demo: Current called on a done iterator")
	e := it.a.edges[it.src][it.pos]
	return e.cond, e.acc, &State{id: e.target, name: it.a.names[e.target]}
}
