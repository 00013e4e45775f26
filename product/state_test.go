package product_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/internal/demo"
	"github.com/yanntm/its-ltl-core/product"
)

// collect drains a fresh cursor over s, returning the emitted transitions.
func collect(t *testing.T, g *product.Graph, s product.State) []product.State {
	t.Helper()
	var out []product.State
	c := g.Successors(s)
	for c.First(); !c.Done(); c.Next() {
		dest, _, _ := c.Current()
		out = append(out, dest)
	}
	return out
}

func TestIdentityStability(t *testing.T) {
	fx := demo.Live()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	s := g.InitialState()
	cp := s.Clone()
	require.Zero(t, s.Compare(cp), "clone must compare equal")
	require.Equal(t, s.Hash(), cp.Hash(), "clone must hash equal")
	cp.Release()
}

func TestRegularStateOrder(t *testing.T) {
	fx := demo.Live()
	g, err := product.New(fx.Aut, fx.Model, product.SLOG)
	require.NoError(t, err)

	s := g.InitialState()
	succs := collect(t, g, s)
	require.NotEmpty(t, succs)
	o := succs[0]

	// Antisymmetry and consistency with equality.
	require.NotZero(t, s.Compare(o))
	require.Equal(t, -sign(s.Compare(o)), sign(o.Compare(s)))
	require.Zero(t, s.Compare(s.Clone()))
}

func TestDivergenceOrdersBelowRegular(t *testing.T) {
	fx := demo.SilentDivergence(true)
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)

	reg := g.InitialState()
	succs := collect(t, g, reg)
	require.Len(t, succs, 1)
	div, ok := succs[0].(*product.DivergenceState)
	require.True(t, ok, "accepting divergence must emit the meta-state first")

	require.Negative(t, div.Compare(reg))
	require.Positive(t, reg.Compare(div))

	// Divergence identity: same condition, same node.
	other := product.NewDivergenceState(div.Cond())
	require.Zero(t, div.Compare(other))
	require.Equal(t, div.Hash(), other.Hash())
}

func TestDivergenceOrderByCondition(t *testing.T) {
	d, err := apcond.NewDictionary("p")
	require.NoError(t, err)
	p, _ := d.Var("p")

	a := product.NewDivergenceState(apcond.Literal(d, p, true))
	b := product.NewDivergenceState(apcond.Literal(d, p, false))
	require.NotZero(t, a.Compare(b))
	require.Equal(t, -sign(a.Compare(b)), sign(b.Compare(a)))
	require.Zero(t, a.Compare(a.Clone()))
}

func TestRegularStateNeverEmpty(t *testing.T) {
	for _, variant := range []product.Variant{product.PlainSOG, product.SLOG} {
		fx := demo.EdgeSkip()
		g, err := product.New(fx.Aut, fx.Model, variant)
		require.NoError(t, err)
		for _, s := range collect(t, g, g.InitialState()) {
			rs, ok := s.(*product.RegularState)
			require.True(t, ok)
			require.False(t, rs.Right().IsEmpty())
		}
	}

	fx := demo.APSplit()
	g, err := product.New(fx.Aut, fx.Model, product.DSOG)
	require.NoError(t, err)
	for _, s := range collect(t, g, g.InitialState()) {
		if rs, ok := s.(*product.RegularState); ok {
			require.False(t, rs.Right().IsEmpty())
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
