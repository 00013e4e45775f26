package product_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/internal/demo"
	"github.com/yanntm/its-ltl-core/product"
)

// TestSLOGLiveCycle walks the trivial live wiring: the two-state automaton
// over the one-state looping system yields (q1, G0) from (q0, G0), and the
// cycle closes back onto a state equal to the initial one.
func TestSLOGLiveCycle(t *testing.T) {
	fx := demo.Live()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	init := g.InitialState()
	succs := collect(t, g, init)
	require.Len(t, succs, 1)

	mid := succs[0].(*product.RegularState)
	require.True(t, mid.Right().Equal(fx.Model.GetInitialState()))
	require.Equal(t, "q1", fx.Aut.FormatState(mid.Left()))

	back := collect(t, g, mid)
	require.Len(t, back, 1)
	require.Zero(t, back[0].Compare(init), "the live cycle must close on the initial state")
}

// TestSLOGWeakerSelfLoopClosure checks the saturation closure: the successor aggregate
// must close over every state reachable through the destination's weaker
// (acceptance-subsumed) self-loop condition p.
func TestSLOGWeakerSelfLoopClosure(t *testing.T) {
	fx := demo.WeakerSelfLoop()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	succs := collect(t, g, g.InitialState())
	require.Len(t, succs, 1)
	got := succs[0].(*product.RegularState).Right()
	require.True(t, got.Equal(fx.Model.AggregateOf(1, 2, 3)),
		"aggregate must include the whole p-satisfying chain, got %d states", got.NbStates())
}

// TestPlainSOGSkipsSaturation pins the PlainSOG degenerate case down on
// the same fixture: with the closure condition forced to false, the
// successor aggregate is exactly the one-step entry set.
func TestPlainSOGSkipsSaturation(t *testing.T) {
	fx := demo.WeakerSelfLoop()
	g, err := product.New(fx.Aut, fx.Model, product.PlainSOG)
	require.NoError(t, err)

	succs := collect(t, g, g.InitialState())
	require.Len(t, succs, 1)
	require.True(t, succs[0].(*product.RegularState).Right().Equal(fx.Model.AggregateOf(1)))
}

// TestSLOGSaturationIdempotent checks that re-applying the fixpoint
// with the same condition leaves an emitted aggregate unchanged.
func TestSLOGSaturationIdempotent(t *testing.T) {
	fx := demo.WeakerSelfLoop()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	succs := collect(t, g, g.InitialState())
	require.Len(t, succs, 1)
	agg := succs[0].(*product.RegularState).Right()

	p, _ := fx.Dict.Var("p")
	F := apcond.Literal(fx.Dict, p, true)
	require.True(t, fx.Model.LeastPreTestFixpoint(agg, F).Equal(agg))
}

// TestSLOGEmptyEdgeSkipped checks that an automaton edge whose entry
// aggregate is empty produces no cursor position.
func TestSLOGEmptyEdgeSkipped(t *testing.T) {
	fx := demo.EdgeSkip()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	c := g.Successors(g.InitialState())
	c.First()
	require.False(t, c.Done())
	dest, cond, acc := c.Current()
	p, _ := fx.Dict.Var("p")
	require.True(t, cond.Equal(apcond.Literal(fx.Dict, p, false)),
		"only the !p edge has a non-empty entry aggregate")
	require.False(t, acc.Empty())
	require.False(t, dest.(*product.RegularState).Right().IsEmpty())

	c.Next()
	require.True(t, c.Done(), "the empty p edge must not produce a position")
}

// TestSLOGDeterminism checks that two cursors over equal states emit
// the same sequence in the same order.
func TestSLOGDeterminism(t *testing.T) {
	fx := demo.WeakerSelfLoop()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	s := g.InitialState()
	first := collect(t, g, s)
	second := collect(t, g, s.Clone())
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Zero(t, first[i].Compare(second[i]))
	}
}
