package bddstub

import (
	"math/bits"

	"github.com/yanntm/its-ltl-core/engine"
)

// Aggregate is bddstub's engine.Aggregate: a bitset over a Model's state
// indices, value-typed and structurally comparable. The embedded id is an
// interned uuid (see Model.intern) carried purely for diagnostics; Equal
// compares content (bits), never id — equality is structural.
type Aggregate struct {
	id    string
	bits  uint64
	model *Model
}

// IsEmpty reports whether this aggregate denotes the null/empty state set.
func (a Aggregate) IsEmpty() bool { return a.bits == 0 }

// Equal reports structural equality: the same bitset content.
func (a Aggregate) Equal(other engine.Aggregate) bool {
	o, ok := other.(Aggregate)
	return ok && o.bits == a.bits
}

// Hash returns a hash consistent with Equal.
func (a Aggregate) Hash() uint64 {
	h := a.bits
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Ordinal returns the bitset content as the total-order surrogate
// engine.Aggregate asks for: equal content, equal ordinal.
func (a Aggregate) Ordinal() uint64 { return a.bits }

// NbStates reports the number of concrete states represented.
func (a Aggregate) NbStates() uint64 { return uint64(bits.OnesCount64(a.bits)) }

// ID returns the interned node identity, for diagnostics only.
func (a Aggregate) ID() string { return a.id }
