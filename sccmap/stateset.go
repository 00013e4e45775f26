package sccmap

import "github.com/yanntm/its-ltl-core/automaton"

// stateIndex assigns a dense, stable integer to every automaton.State
// discovered during a reachability walk. States carry identity only
// through Hash and Compare, never Go equality, so the index buckets by
// hash and resolves collisions with Compare.
type stateIndex struct {
	buckets map[uint64][]indexed
	order   []automaton.State // states in discovery order; index == id
}

type indexed struct {
	state automaton.State
	id    int
}

func newStateIndex() *stateIndex {
	return &stateIndex{buckets: make(map[uint64][]indexed)}
}

// idOf returns the dense id for s, allocating a new one (and cloning s for
// ownership) the first time s is seen.
func (si *stateIndex) idOf(s automaton.State) int {
	h := s.Hash()
	for _, e := range si.buckets[h] {
		if e.state.Compare(s) == 0 {
			return e.id
		}
	}
	owned := s.Clone()
	id := len(si.order)
	si.buckets[h] = append(si.buckets[h], indexed{state: owned, id: id})
	si.order = append(si.order, owned)
	return id
}

// lookup reports the id of s if already discovered, without allocating one.
func (si *stateIndex) lookup(s automaton.State) (int, bool) {
	for _, e := range si.buckets[s.Hash()] {
		if e.state.Compare(s) == 0 {
			return e.id, true
		}
	}
	return 0, false
}
