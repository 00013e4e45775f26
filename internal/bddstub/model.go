package bddstub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yanntm/its-ltl-core/apcond"
)

// StateDef describes one concrete system state: its index (position in
// Model.states, and bit position in an Aggregate's bitset) and the
// boolean valuation it gives every variable of the shared Dictionary.
type StateDef struct {
	Valuation map[apcond.VarID]bool
}

// Model is a tiny explicit-state transition system: a fixed set of states,
// a next-state relation given as adjacency, and the shared AP Dictionary
// every valuation is expressed over. It implements engine.SymbolicEngine.
type Model struct {
	dict   *apcond.Dictionary
	states []StateDef
	adj    [][]int // adj[i] = states reachable from i in one step
	init   uint64  // bitset of initial states

	mu      sync.Mutex
	nodeIDs map[uint64]string
}

// NewModel builds a Model over dict with the given per-state valuations,
// adjacency (adj[i] lists the one-step successors of state i), and
// initial-state bitset.
func NewModel(dict *apcond.Dictionary, states []StateDef, adj [][]int, init uint64) *Model {
	return &Model{
		dict:    dict,
		states:  states,
		adj:     adj,
		init:    init,
		nodeIDs: make(map[uint64]string),
	}
}

// Dictionary returns the AP namespace this model's valuations are expressed over.
func (m *Model) Dictionary() *apcond.Dictionary { return m.dict }

// intern returns the canonical Aggregate for a given bitset, allocating a
// fresh uuid the first time this content is observed and reusing it on
// every later occurrence — the BDD unique-table discipline in miniature.
func (m *Model) intern(bits uint64) Aggregate {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.nodeIDs[bits]
	if !ok {
		id = uuid.NewString()
		m.nodeIDs[bits] = id
	}
	return Aggregate{id: id, bits: bits, model: m}
}

func (m *Model) valuationCond(i int) apcond.Cond {
	c := apcond.True(m.dict)
	for _, v := range m.dict.Vars() {
		val, ok := m.states[i].Valuation[v]
		c = c.And(apcond.Literal(m.dict, v, ok && val))
	}
	return c
}

func (m *Model) satisfies(i int, c apcond.Cond) bool {
	return m.valuationCond(i).Implies(c)
}

func (m *Model) stepBits(bits uint64) uint64 {
	var out uint64
	for i := 0; i < len(m.states); i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		for _, j := range m.adj[i] {
			out |= 1 << uint(j)
		}
	}
	return out
}

func (m *Model) filterBits(bits uint64, c apcond.Cond) uint64 {
	var out uint64
	for i := 0; i < len(m.states); i++ {
		if bits&(1<<uint(i)) != 0 && m.satisfies(i, c) {
			out |= 1 << uint(i)
		}
	}
	return out
}

// closePostTest is the stub's leastPostTestFixpoint: restrict the seed to
// states satisfying c, then repeatedly add one-step successors whose
// post-valuation satisfies c, until fixpoint. The seed restriction is what
// makes an AP valuation with no matching seed state yield the empty
// aggregate — the "skip this conjunction" signal the DSOG AP split relies on.
func (m *Model) closePostTest(bits uint64, c apcond.Cond) uint64 {
	cur := m.filterBits(bits, c)
	for {
		next := m.filterBits(m.stepBits(cur), c)
		merged := cur | next
		if merged == cur {
			return cur
		}
		cur = merged
	}
}

// closePreTest is the stub's leastPreTestFixpoint: keep the seed as-is and
// repeatedly fire transitions from members satisfying c, until fixpoint.
// With c = false no member may fire and the seed is returned unchanged —
// exactly the PLAIN_SOG degenerate case.
func (m *Model) closePreTest(bits uint64, c apcond.Cond) uint64 {
	cur := bits
	for {
		next := m.stepBits(m.filterBits(cur, c))
		merged := cur | next
		if merged == cur {
			return cur
		}
		cur = merged
	}
}

// onCycle reports, for every member of bits, whether it lies on a cycle
// using only edges whose destination is also in bits and satisfies c — an
// internal silent cycle, the divergence GetDivergent reports. State counts
// in this stub's fixtures are small, so a direct O(n^2)
// reachability-from-self search is preferred over a general SCC pass.
func (m *Model) onCycle(bits uint64, c apcond.Cond) uint64 {
	restricted := make([][]int, len(m.states))
	for i := 0; i < len(m.states); i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		for _, j := range m.adj[i] {
			if bits&(1<<uint(j)) != 0 && m.satisfies(j, c) {
				restricted[i] = append(restricted[i], j)
			}
		}
	}

	var out uint64
	for i := 0; i < len(m.states); i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		visited := map[int]bool{}
		stack := append([]int(nil), restricted[i]...)
		for len(stack) > 0 {
			n := len(stack) - 1
			v := stack[n]
			stack = stack[:n]
			if v == i {
				out |= 1 << uint(i)
				break
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			stack = append(stack, restricted[v]...)
		}
	}
	return out
}
