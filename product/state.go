package product

import (
	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/automaton"
	"github.com/yanntm/its-ltl-core/engine"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
)

// State is one node of the product graph: an opaque identity implementing
// the hash/compare/clone contract an external emptiness checker keys its
// visited set on. Exactly two implementations exist — RegularState and
// DivergenceState — forming a closed, tagged sum type.
type State interface {
	// Compare returns <0, 0, >0 establishing a total order consistent with
	// equality. A DivergenceState orders strictly below any RegularState;
	// the choice of side is fixed here and applied symmetrically by both
	// implementations.
	Compare(other State) int
	// Hash returns a stable hash consistent with Compare returning 0.
	Hash() uint64
	// Clone returns an independent, equal copy. The clone owns a fresh
	// clone of the underlying automaton state.
	Clone() State
	// Release drops the owned automaton state. The State must not be used
	// afterward.
	Release()
}

// RegularState pairs an automaton state with an aggregate of system states.
// SLOG and PlainSOG products populate only left and right; DSOG products
// additionally carry the AP condition the aggregate was closed under, the
// divergence flag, and the precomputed observable-successor aggregate.
type RegularState struct {
	left  automaton.State
	right engine.Aggregate
	cond  apcond.Cond
	div   bool
	succ  engine.Aggregate
}

// newSLOGState builds the SLOG/PlainSOG flavor of a regular product state.
// Takes ownership of left; right must be non-empty — the cursors never emit
// an empty candidate, so a violation here is a composition defect.
func newSLOGState(left automaton.State, right engine.Aggregate, dict *apcond.Dictionary) *RegularState {
	assertpkg.Invariant(!right.IsEmpty(), "product: regular state with empty aggregate")
	return &RegularState{left: left, right: right, cond: apcond.True(dict)}
}

// newDSOGState builds the DSOG flavor: forward-saturate the incoming
// aggregate under cond, detect internal divergence, and precompute the
// one-step observable successor aggregate (transitions whose post-state
// valuation leaves cond). The closed aggregate may come out empty — DSOG
// cursors construct candidates speculatively per AP valuation and skip the
// empty ones, so emptiness is checked by the caller, not here.
func newDSOGState(left automaton.State, eng engine.SymbolicEngine, right engine.Aggregate, cond apcond.Cond) *RegularState {
	closed := eng.LeastPostTestFixpoint(right, cond)
	div := !eng.GetDivergent(closed, cond).IsEmpty()
	succ := eng.GetSelector(cond).Not().And(eng.GetNextRel()).Apply(closed)
	return &RegularState{left: left, right: closed, cond: cond, div: div, succ: succ}
}

// Left returns the automaton component. Borrowed: the state keeps ownership.
func (s *RegularState) Left() automaton.State { return s.left }

// Right returns the aggregate of system states this node represents.
func (s *RegularState) Right() engine.Aggregate { return s.right }

// Cond returns the AP condition the aggregate was closed under (true for
// SLOG/PlainSOG states, which never split).
func (s *RegularState) Cond() apcond.Cond { return s.cond }

// Div reports whether the aggregate contains an internal divergence.
func (s *RegularState) Div() bool { return s.div }

// Succ returns the precomputed observable-successor aggregate (DSOG only;
// nil on SLOG/PlainSOG states).
func (s *RegularState) Succ() engine.Aggregate { return s.succ }

// Compare orders s against other. Regular states order by automaton state
// first, then by aggregate identity; any DivergenceState sorts strictly
// below.
func (s *RegularState) Compare(other State) int {
	if _, isDiv := other.(*DivergenceState); isDiv {
		return 1
	}
	o, ok := other.(*RegularState)
	assertpkg.Invariant(ok, "product: Compare against a foreign State implementation")
	if res := s.left.Compare(o.left); res != 0 {
		return res
	}
	if s.right.Equal(o.right) {
		return 0
	}
	if s.right.Ordinal() < o.right.Ordinal() {
		return 1
	}
	return -1
}

// Hash decorrelates the automaton-state hash through a Wang integer mix,
// then folds the aggregate hash in by XOR.
func (s *RegularState) Hash() uint64 {
	return wangHash(s.left.Hash()) ^ s.right.Hash()
}

// Clone returns an independent copy owning a fresh clone of left.
func (s *RegularState) Clone() State {
	return &RegularState{
		left:  s.left.Clone(),
		right: s.right,
		cond:  s.cond,
		div:   s.div,
		succ:  s.succ,
	}
}

// Release drops the owned automaton state.
func (s *RegularState) Release() { s.left.Release() }

// DivergenceState is the DSOG divergence meta-state DIV(c): a singleton
// node labeled by an AP condition, reached when an aggregate diverges under
// a valuation the automaton accepts, and closed by a single accepting
// self-loop (see divCursor).
type DivergenceState struct {
	cond apcond.Cond
}

// NewDivergenceState builds DIV(cond). Exposed for emptiness checkers that
// need to recognize or reconstruct divergence nodes; cursors build their
// own.
func NewDivergenceState(cond apcond.Cond) *DivergenceState {
	return &DivergenceState{cond: cond}
}

// Cond returns the AP condition labeling this divergence node.
func (s *DivergenceState) Cond() apcond.Cond { return s.cond }

// Compare orders s against other: strictly below any RegularState,
// otherwise by condition identity.
func (s *DivergenceState) Compare(other State) int {
	if _, isReg := other.(*RegularState); isReg {
		return -1
	}
	o, ok := other.(*DivergenceState)
	assertpkg.Invariant(ok, "product: Compare against a foreign State implementation")
	if s.cond.Equal(o.cond) {
		return 0
	}
	if s.cond.Ordinal() < o.cond.Ordinal() {
		return -1
	}
	return 1
}

// Hash derives from the condition, consistent with Compare.
func (s *DivergenceState) Hash() uint64 { return s.cond.Hash() }

// Clone returns an equal copy.
func (s *DivergenceState) Clone() State { return &DivergenceState{cond: s.cond} }

// Release is a no-op: divergence states own no automaton state.
func (s *DivergenceState) Release() {}

// wangHash is Wang's 64-bit integer mix.
func wangHash(k uint64) uint64 {
	k = ^k + (k << 21)
	k ^= k >> 24
	k = k + (k << 3) + (k << 8)
	k ^= k >> 14
	k = k + (k << 2) + (k << 4)
	k ^= k >> 28
	k += k << 31
	return k
}
