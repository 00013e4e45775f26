package apenum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/apenum"
)

func TestEmptyVarsYieldsTrueOnce(t *testing.T) {
	d, err := apcond.NewDictionary("p")
	require.NoError(t, err)

	e := apenum.New(d, nil)
	e.First()
	require.False(t, e.Done())
	require.True(t, e.Current().IsTrue())
	e.Next()
	require.True(t, e.Done())
}

func TestEnumeratesAllConjunctions(t *testing.T) {
	d, err := apcond.NewDictionary("p", "q")
	require.NoError(t, err)
	p, _ := d.Var("p")
	q, _ := d.Var("q")

	e := apenum.New(d, []apcond.VarID{p, q})
	var seen []apcond.Cond
	for e.First(); !e.Done(); e.Next() {
		seen = append(seen, e.Current())
	}
	require.Len(t, seen, 4)

	want := []apcond.Cond{
		apcond.Literal(d, p, false).And(apcond.Literal(d, q, false)),
		apcond.Literal(d, p, true).And(apcond.Literal(d, q, false)),
		apcond.Literal(d, p, false).And(apcond.Literal(d, q, true)),
		apcond.Literal(d, p, true).And(apcond.Literal(d, q, true)),
	}
	for _, w := range want {
		found := false
		for _, s := range seen {
			if s.Equal(w) {
				found = true
				break
			}
		}
		require.True(t, found, "missing conjunction %s", w.String())
	}
}

func TestRestartableViaFirst(t *testing.T) {
	d, err := apcond.NewDictionary("p")
	require.NoError(t, err)
	p, _ := d.Var("p")
	e := apenum.New(d, []apcond.VarID{p})

	e.First()
	first := e.Current()
	e.Next()
	e.Next() // past done
	require.True(t, e.Done())

	e.First()
	require.True(t, e.Current().Equal(first))
}
