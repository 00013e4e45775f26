package sccmap

import (
	"errors"
	"fmt"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
)

// Sentinel errors for Build's construction-time misconfiguration.
var (
	ErrNilAutomaton  = errors.New("sccmap: automaton is nil")
	ErrNilDictionary = errors.New("sccmap: dictionary is nil")
)

// BuildMode selects how aggressively the SCC-AP map narrows AP
// enumeration.
type BuildMode int

const (
	// Standard computes the precise ap(SCC): the union of variable
	// supports of every edge reachable from the SCC. This is the default.
	Standard BuildMode = iota
	// Off disables the reduction: every SCC is handed the full variable
	// universe, so DSOG's AP split degenerates to enumerating every
	// registered variable at every state.
	Off
	// Full currently computes identically to Standard; it is kept as a
	// distinct, named mode so a further tightening has somewhere to live
	// without an API break.
	Full
)

// Map is the immutable SCC → ap(SCC) function, built once by Build and
// queried thereafter via APOf.
type Map struct {
	dict  *apcond.Dictionary
	mode  BuildMode
	idx   *stateIndex
	sccOf []int
	apOf  []apcond.Cond // apOf[scc] = ap(SCC), indexed like tarjan.order
	full  apcond.Cond   // cached "every variable" conjunction, for Off
}

// Build walks every state reachable from aut.InitialState(), decomposes
// the resulting graph into strongly connected components, and computes
// ap(SCC) for each one.
func Build(aut automaton.Automaton, dict *apcond.Dictionary, mode BuildMode) (*Map, error) {
	if aut == nil {
		return nil, fmt.Errorf("sccmap: Build: %w", ErrNilAutomaton)
	}
	if dict == nil {
		return nil, fmt.Errorf("sccmap: Build: %w", ErrNilDictionary)
	}

	g := discover(aut)
	t := runTarjan(g)

	own := make([]map[apcond.VarID]struct{}, len(t.order))
	succSCCs := make([]map[int]struct{}, len(t.order))
	for scc := range t.order {
		own[scc] = map[apcond.VarID]struct{}{}
		succSCCs[scc] = map[int]struct{}{}
	}
	for u, succs := range g.adj {
		su := t.sccOf[u]
		for i, v := range succs {
			for _, varb := range g.edgeSupport[u][i] {
				own[su][varb] = struct{}{}
			}
			if sv := t.sccOf[v]; sv != su {
				succSCCs[su][sv] = struct{}{}
			}
		}
	}

	apVars := make([]map[apcond.VarID]struct{}, len(t.order))
	for scc := range t.order {
		apVars[scc] = map[apcond.VarID]struct{}{}
		for v := range own[scc] {
			apVars[scc][v] = struct{}{}
		}
		// Successor SCCs always have a strictly smaller completion id
		// (Tarjan completes a component only after every component it can
		// reach), so their ap-set is already finalized here.
		for s := range succSCCs[scc] {
			for v := range apVars[s] {
				apVars[scc][v] = struct{}{}
			}
		}
	}

	full := apcond.True(dict)
	for _, v := range dict.Vars() {
		full = full.And(apcond.Literal(dict, v, true))
	}

	apOf := make([]apcond.Cond, len(t.order))
	for scc, vars := range apVars {
		c := apcond.True(dict)
		for v := range vars {
			c = c.And(apcond.Literal(dict, v, true))
		}
		apOf[scc] = c
	}

	return &Map{dict: dict, mode: mode, idx: g.idx, sccOf: t.sccOf, apOf: apOf, full: full}, nil
}

// APOf returns ap(SCC) for the SCC containing s. In Off mode this is
// always the full variable universe, regardless of the computed map.
// States never observed by Build (outside the set reachable from the
// automaton's initial state) fall back to the full variable universe too:
// a safe, conservative choice that never narrows enumeration past what is
// actually legal for an unknown state.
func (m *Map) APOf(s automaton.State) apcond.Cond {
	if m.mode == Off {
		return m.full
	}
	id, ok := m.idx.lookup(s)
	if !ok {
		return m.full
	}
	return m.apOf[m.sccOf[id]]
}

// Dictionary returns the AP dictionary this map was built against.
func (m *Map) Dictionary() *apcond.Dictionary { return m.dict }

// Mode returns the BuildMode this map was built with.
func (m *Map) Mode() BuildMode { return m.mode }
