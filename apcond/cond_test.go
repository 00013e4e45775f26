package apcond_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/apcond"
)

func mustDict(t *testing.T, names ...string) *apcond.Dictionary {
	t.Helper()
	d, err := apcond.NewDictionary(names...)
	require.NoError(t, err)
	return d
}

func TestDictionaryValidation(t *testing.T) {
	_, err := apcond.NewDictionary()
	require.ErrorIs(t, err, apcond.ErrEmptyDictionary)

	_, err = apcond.NewDictionary("p", "p")
	require.ErrorIs(t, err, apcond.ErrDuplicateVariable)
}

func TestCondAlgebra(t *testing.T) {
	d := mustDict(t, "p", "q")
	p, _ := d.Var("p")
	q, _ := d.Var("q")

	pTrue := apcond.Literal(d, p, true)
	qTrue := apcond.Literal(d, q, true)

	conj := pTrue.And(qTrue)
	require.True(t, conj.Implies(pTrue))
	require.True(t, conj.Implies(qTrue))
	require.False(t, pTrue.Implies(qTrue))

	require.True(t, apcond.True(d).IsTrue())
	require.True(t, apcond.False(d).IsFalse())
	require.True(t, pTrue.Or(pTrue.Not()).Equal(apcond.True(d)))
	require.True(t, pTrue.And(pTrue.Not()).Equal(apcond.False(d)))
}

func TestCondVariables(t *testing.T) {
	d := mustDict(t, "p", "q", "r")
	p, _ := d.Var("p")
	q, _ := d.Var("q")

	conj := apcond.Literal(d, p, true).And(apcond.Literal(d, q, true))
	vars := conj.Variables()
	require.ElementsMatch(t, []apcond.VarID{p, q}, vars)

	require.Empty(t, apcond.True(d).Variables())
}

func TestCondSupport(t *testing.T) {
	d := mustDict(t, "p", "q", "r")
	p, _ := d.Var("p")
	q, _ := d.Var("q")
	r, _ := d.Var("r")

	// c = p | q depends on both p and q; r is irrelevant.
	c := apcond.Literal(d, p, true).Or(apcond.Literal(d, q, true))
	require.ElementsMatch(t, []apcond.VarID{p, q}, c.Support())

	require.Empty(t, apcond.True(d).Support())
	_ = r
}

func TestAcceptanceSubsumes(t *testing.T) {
	full := apcond.FullAcceptance(2)
	weak := apcond.AcceptanceOf(0)
	require.True(t, full.Subsumes(weak))
	require.False(t, weak.Subsumes(full))
	require.True(t, full.Subsumes(full))
}
