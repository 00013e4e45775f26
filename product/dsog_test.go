package product_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/internal/demo"
	"github.com/yanntm/its-ltl-core/product"
)

// TestDSOGLiveCycle exercises the DSOG variant on the
// observable live fixture: the product alternates between the two
// automaton states, each step carrying the full acceptance set, and closes
// back on a state equal to the initial one — an accepting cycle.
func TestDSOGLiveCycle(t *testing.T) {
	fx := demo.LiveObservable()
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	init := g.InitialState().(*product.RegularState)
	require.False(t, init.Div(), "no silent cycle in an alternating system")
	require.False(t, init.Succ().IsEmpty())

	succs := collect(t, g, init)
	require.Len(t, succs, 1)
	mid := succs[0].(*product.RegularState)
	require.Equal(t, "q1", fx.Aut.FormatState(mid.Left()))

	back := collect(t, g, mid)
	require.Len(t, back, 1)
	require.Zero(t, back[0].Compare(init), "the live cycle must close on the initial state")
}

// TestDSOGDivergenceWithoutAcceptance checks divergence without acceptance: the aggregate
// diverges, but no self-loop carries the full acceptance set, so
// divergence emission is skipped and no DIV state appears.
func TestDSOGDivergenceWithoutAcceptance(t *testing.T) {
	fx := demo.SilentDivergence(false)
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	init := g.InitialState().(*product.RegularState)
	require.True(t, init.Div(), "the silent two-state cycle must be detected")

	for _, s := range collect(t, g, init) {
		_, isDiv := s.(*product.DivergenceState)
		require.False(t, isDiv, "no DIV state may appear without full-acceptance self-loop")
	}
}

// TestDSOGAcceptingDivergence checks accepting divergence: with a full-acceptance
// self-loop the first successor is DIV(true), and DIV self-loops with the
// full acceptance set — an accepting cycle.
func TestDSOGAcceptingDivergence(t *testing.T) {
	fx := demo.SilentDivergence(true)
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	init := g.InitialState().(*product.RegularState)
	require.True(t, init.Div())

	c := g.Successors(init)
	c.First()
	require.False(t, c.Done())
	dest, cond, acc := c.Current()
	div, ok := dest.(*product.DivergenceState)
	require.True(t, ok, "the divergence meta-state must come first")
	require.True(t, cond.IsTrue())
	require.True(t, acc.Equal(g.AllAcceptanceConditions()))

	// The only successor of DIV(c) is itself, fully accepting.
	dc := g.Successors(div)
	dc.First()
	require.False(t, dc.Done())
	self, scond, sacc := dc.Current()
	require.Zero(t, self.Compare(div))
	require.True(t, scond.Equal(div.Cond()))
	require.True(t, sacc.Equal(g.AllAcceptanceConditions()))
	dc.Next()
	require.True(t, dc.Done(), "a divergence state has exactly one successor")
}

// TestDSOGAPSplit checks the AP split: two atomic propositions in the reachable
// SCC split successor enumeration over four valuations, of which exactly
// the two with a matching system state are emitted.
func TestDSOGAPSplit(t *testing.T) {
	fx := demo.APSplit()
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	init := g.InitialState().(*product.RegularState)
	require.False(t, init.Div())

	var aggs []uint64
	c := g.Successors(init)
	for c.First(); !c.Done(); c.Next() {
		dest, cond, _ := c.Current()
		// The emitted edge's condition subsumes the source's.
		require.True(t, init.Cond().Implies(cond))
		rs := dest.(*product.RegularState)
		require.Equal(t, "q1", fx.Aut.FormatState(rs.Left()))
		require.False(t, rs.Right().IsEmpty())
		aggs = append(aggs, rs.Right().Ordinal())
	}
	require.Len(t, aggs, 2, "two of the four valuations have matching states")
	require.NotEqual(t, aggs[0], aggs[1], "the two splits reach distinct aggregates")
}

// TestDSOGSaturationIdempotent checks saturation idempotence: for every emitted regular
// state, re-applying the forward fixpoint leaves the aggregate unchanged,
// and the div flag matches a fresh divergence query.
func TestDSOGSaturationIdempotent(t *testing.T) {
	fx := demo.APSplit()
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	init := g.InitialState().(*product.RegularState)
	states := append([]product.State{init}, collect(t, g, init)...)
	for _, s := range states {
		rs, ok := s.(*product.RegularState)
		if !ok {
			continue
		}
		require.True(t, fx.Model.LeastPostTestFixpoint(rs.Right(), rs.Cond()).Equal(rs.Right()))
		require.Equal(t, rs.Div(), !fx.Model.GetDivergent(rs.Right(), rs.Cond()).IsEmpty())
	}
}

// TestDSOGDeterminism pins the DSOG cursor order down, divergence
// emission included.
func TestDSOGDeterminism(t *testing.T) {
	for _, mk := range []func() demo.Fixture{demo.LiveObservable, demo.APSplit, func() demo.Fixture { return demo.SilentDivergence(true) }} {
		fx := mk()
		g, err := product.New(fx.Aut, fx.Model, product.DSOG)
		require.NoError(t, err)

		s := g.InitialState()
		first := collect(t, g, s)
		second := collect(t, g, s.Clone())
		require.Equal(t, len(first), len(second))
		for i := range first {
			require.Zero(t, first[i].Compare(second[i]))
		}
	}
}
