// Package apenum enumerates atomic-proposition conjunctions: given a
// finite ordered set of variable indices, it produces all 2^|V|
// conjunctions assigning a truth value to each variable, lazily, in a
// single pass, restartable via First.
//
// Enumeration needs no recursion: the enumerator is a counter modulo
// 2^|V| paired with positive/negative literal emission for each bit.
package apenum

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// Enumerator lazily walks every conjunction over a fixed variable vector.
// An empty vector yields exactly one conjunction: true.
//
// Usage mirrors the left-iterator protocol the rest of this module depends
// on (automaton.SuccIter, product.Cursor): call First to position at the
// first conjunction, Done to test for exhaustion, Current to read the
// conjunction at the current position, and Next to advance.
type Enumerator struct {
	dict    *apcond.Dictionary
	vars    []apcond.VarID
	count   uint64 // 2^len(vars), total number of conjunctions
	pos     uint64 // current counter value
	started bool
}

// New returns an Enumerator over vars, drawn from dict. vars may be empty.
func New(dict *apcond.Dictionary, vars []apcond.VarID) *Enumerator {
	count := uint64(1) << uint(len(vars))
	cp := append([]apcond.VarID(nil), vars...)
	return &Enumerator{dict: dict, vars: cp, count: count}
}

// First resets the enumerator to its first conjunction. Safe to call
// repeatedly to restart a traversal.
func (e *Enumerator) First() {
	e.pos = 0
	e.started = true
}

// Next advances to the following conjunction.
func (e *Enumerator) Next() {
	e.pos++
}

// Done reports whether every conjunction has been produced.
func (e *Enumerator) Done() bool {
	return !e.started || e.pos >= e.count
}

// Current returns the conjunction at the current position: for each
// variable vars[i], the literal is positive iff bit i of the counter is
// set. Calling Current when Done is a contract violation — callers must
// check Done first, exactly like the automaton's SuccIter.
func (e *Enumerator) Current() apcond.Cond {
	assertpkg.Invariant(!e.Done(), "apenum: Current called on a done Enumerator")
	c := apcond.True(e.dict)
	for i, v := range e.vars {
		bit := (e.pos>>uint(i))&1 == 1
		c = c.And(apcond.Literal(e.dict, v, bit))
	}
	return c
}
