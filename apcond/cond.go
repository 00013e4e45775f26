package apcond

import (
	"strings"

	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// Cond is an opaque boolean condition over a Dictionary's atomic
// propositions. It is value-typed and cheap to copy: the underlying
// representation is a bitmask of satisfying assignments ("minterms") over
// the Dictionary's variable universe, exactly like a reduced BDD node would
// behave from the outside (structural equality, conjunction, negation,
// implication), without requiring a real BDD package.
type Cond struct {
	dict *Dictionary
	mask uint64 // bit i set <=> assignment i satisfies this condition
}

// True returns the condition satisfied by every assignment.
func True(d *Dictionary) Cond { return Cond{dict: d, mask: d.top()} }

// False returns the condition satisfied by no assignment.
func False(d *Dictionary) Cond { return Cond{dict: d, mask: 0} }

// Literal returns the condition "v = value".
func Literal(d *Dictionary, v VarID, value bool) Cond {
	var mask uint64
	n := d.universe()
	for a := uint64(0); a < n; a++ {
		bit := (a>>uint(v))&1 == 1
		if bit == value {
			mask |= 1 << a
		}
	}
	return Cond{dict: d, mask: mask}
}

// IsFalse reports whether c is unsatisfiable.
func (c Cond) IsFalse() bool { return c.mask == 0 }

// IsTrue reports whether c is satisfied by every assignment.
func (c Cond) IsTrue() bool { return c.dict != nil && c.mask == c.dict.top() }

// Dictionary returns the Dictionary c was built against.
func (c Cond) Dictionary() *Dictionary { return c.dict }

func (c Cond) checkSameDict(o Cond) {
	assertpkg.Invariant(c.dict == o.dict, "apcond: Cond operands from different dictionaries")
}

// And returns the conjunction of c and o.
func (c Cond) And(o Cond) Cond {
	c.checkSameDict(o)
	return Cond{dict: c.dict, mask: c.mask & o.mask}
}

// Or returns the disjunction of c and o.
func (c Cond) Or(o Cond) Cond {
	c.checkSameDict(o)
	return Cond{dict: c.dict, mask: c.mask | o.mask}
}

// Not returns the negation of c.
func (c Cond) Not() Cond {
	return Cond{dict: c.dict, mask: c.dict.top() &^ c.mask}
}

// Implies reports whether c implies o, i.e. every assignment satisfying c
// also satisfies o. Equivalent to c.And(o) == c.
func (c Cond) Implies(o Cond) bool {
	c.checkSameDict(o)
	return c.mask&o.mask == c.mask
}

// Equal reports structural equality: the same dictionary and minterm set.
func (c Cond) Equal(o Cond) bool {
	return c.dict == o.dict && c.mask == o.mask
}

// Variables decodes c, assuming c is a conjunction of positive variable
// literals (the shape ap(SCC) always has — see sccmap), into the ordered
// list of variables it forces true. A BDD engine would peel one positive
// literal per bdd_var/bdd_high step from exactly this kind of condition;
// a minterm bitmask already exposes the whole support, so the
// decomposition here is a single scan.
func (c Cond) Variables() []VarID {
	var out []VarID
	if c.IsFalse() {
		return out
	}
	for _, v := range c.dict.Vars() {
		if c.Implies(Literal(c.dict, v, true)) {
			out = append(out, v)
		}
	}
	return out
}

// Support returns every variable c's truth value actually depends on —
// the standard BDD notion of support, rather than Variables' narrower
// "entailed positive literal" notion. Used by sccmap to collect the atomic
// propositions mentioned on an automaton edge's condition, regardless of
// polarity or formula shape.
func (c Cond) Support() []VarID {
	var out []VarID
	n := c.dict.universe()
	for i, v := range c.dict.Vars() {
		bit := uint64(1) << uint(i)
		depends := false
		for a := uint64(0); a < n; a++ {
			if a&bit != 0 {
				continue
			}
			b := a | bit
			aIn := (c.mask>>a)&1 == 1
			bIn := (c.mask>>b)&1 == 1
			if aIn != bIn {
				depends = true
				break
			}
		}
		if depends {
			out = append(out, v)
		}
	}
	return out
}

// Hash returns a hash consistent with Equal: equal conditions (same
// dictionary, same mask) always hash the same. This stands in for the
// BDD node-pointer hash a real decision-diagram engine would supply,
// mixing the mask through the 64-bit MurmurHash3 finalizer.
func (c Cond) Hash() uint64 {
	h := c.mask
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Ordinal exposes the raw minterm mask as a stable, totally-ordered
// surrogate for c. It carries no boolean meaning by itself (mask order
// is not implication order); it exists solely so callers that need a
// total order over Cond values for tie-breaking (product.DivergenceState
// in particular, which has no other field to order on) have one.
func (c Cond) Ordinal() uint64 { return c.mask }

// String renders c as a small conjunction-of-literals-like listing for
// diagnostics (FormatState augmentation, test failure messages). It is not
// a canonical form: only the literals c entails are listed, so two
// different Cond values may print the same when a formula is not a pure
// conjunction (p | q prints as "true").
func (c Cond) String() string {
	if c.IsFalse() {
		return "false"
	}
	if c.IsTrue() {
		return "true"
	}
	var b strings.Builder
	for _, v := range c.dict.Vars() {
		pos := c.Implies(Literal(c.dict, v, true))
		neg := c.Implies(Literal(c.dict, v, false))
		if !pos && !neg {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" & ")
		}
		if pos {
			b.WriteString(c.dict.Name(v))
		} else {
			b.WriteString("!" + c.dict.Name(v))
		}
	}
	if b.Len() == 0 {
		return "true"
	}
	return b.String()
}
