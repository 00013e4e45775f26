package sccmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/internal/demo"
	"github.com/yanntm/its-ltl-core/sccmap"
)

func mustDict(t *testing.T, names ...string) *apcond.Dictionary {
	t.Helper()
	d, err := apcond.NewDictionary(names...)
	require.NoError(t, err)
	return d
}

func TestBuildValidation(t *testing.T) {
	d := mustDict(t, "p")
	a := demo.NewAutomaton(d, 1)
	a.AddState("q0")

	_, err := sccmap.Build(nil, d, sccmap.Standard)
	require.ErrorIs(t, err, sccmap.ErrNilAutomaton)

	_, err = sccmap.Build(a, nil, sccmap.Standard)
	require.ErrorIs(t, err, sccmap.ErrNilDictionary)
}

// TestAPNarrowing builds q0 --p--> q1 --true--> q1: the trivial SCC of q0
// still sees p (its own outgoing edge), while q1's SCC reaches no
// AP-labeled edge at all.
func TestAPNarrowing(t *testing.T) {
	d := mustDict(t, "p")
	p, _ := d.Var("p")
	a := demo.NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	a.AddEdge(q0, q1, apcond.Literal(d, p, true), apcond.FullAcceptance(1))
	a.AddEdge(q1, q1, apcond.True(d), apcond.FullAcceptance(1))

	m, err := sccmap.Build(a, d, sccmap.Standard)
	require.NoError(t, err)

	require.Equal(t, []apcond.VarID{p}, m.APOf(a.InitialState()).Variables())
	require.Empty(t, m.APOf(a.StateAt(q1)).Variables(), "q1's SCC reaches only true-labeled edges")
}

// TestAPUnionAcrossSCCs checks that an upstream SCC inherits the AP sets
// of everything it can reach.
func TestAPUnionAcrossSCCs(t *testing.T) {
	d := mustDict(t, "p", "q")
	p, _ := d.Var("p")
	q, _ := d.Var("q")
	a := demo.NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	a.AddEdge(q0, q0, apcond.Literal(d, p, true), apcond.FullAcceptance(1))
	a.AddEdge(q0, q1, apcond.True(d), apcond.FullAcceptance(1))
	a.AddEdge(q1, q1, apcond.Literal(d, q, true), apcond.FullAcceptance(1))

	m, err := sccmap.Build(a, d, sccmap.Standard)
	require.NoError(t, err)

	require.ElementsMatch(t, []apcond.VarID{p, q}, m.APOf(a.InitialState()).Variables())
	require.Equal(t, []apcond.VarID{q}, m.APOf(a.StateAt(q1)).Variables())
}

// TestBuildModeOff hands every SCC the full variable universe.
func TestBuildModeOff(t *testing.T) {
	d := mustDict(t, "p", "q")
	a := demo.NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	a.AddEdge(q0, q0, apcond.True(d), apcond.FullAcceptance(1))

	m, err := sccmap.Build(a, d, sccmap.Off)
	require.NoError(t, err)
	require.Len(t, m.APOf(a.InitialState()).Variables(), d.Len())
	require.Equal(t, sccmap.Off, m.Mode())
}

// TestUnknownStateFallsBack: a state never reached from the initial state
// conservatively gets the full universe.
func TestUnknownStateFallsBack(t *testing.T) {
	d := mustDict(t, "p")
	a := demo.NewAutomaton(d, 1)
	q0 := a.AddState("q0")
	unreachable := a.AddState("island")
	a.AddEdge(q0, q0, apcond.True(d), apcond.FullAcceptance(1))
	a.AddEdge(unreachable, unreachable, apcond.True(d), apcond.FullAcceptance(1))

	m, err := sccmap.Build(a, d, sccmap.Standard)
	require.NoError(t, err)

	require.Empty(t, m.APOf(a.InitialState()).Variables())
	require.Len(t, m.APOf(a.StateAt(unreachable)).Variables(), d.Len())
}
