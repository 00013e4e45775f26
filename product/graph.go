package product

import (
	"fmt"

	"github.com/yanntm/its-ltl-core/apcond"
	"github.com/yanntm/its-ltl-core/apenum"
	"github.com/yanntm/its-ltl-core/automaton"
	"github.com/yanntm/its-ltl-core/engine"
	"github.com/yanntm/its-ltl-core/internal/assertpkg"
	"github.com/yanntm/its-ltl-core/sccmap"
)

// Graph is the on-the-fly product of a Büchi automaton with a symbolic
// system model. It holds its collaborators by borrow — the caller guarantees the automaton and the
// engine outlive the Graph — and allocates no backing storage for visited
// states; memory stays bounded by the external emptiness checker's
// frontier.
type Graph struct {
	aut     automaton.Automaton
	eng     engine.SymbolicEngine
	variant Variant
	dict    *apcond.Dictionary
	allAcc  apcond.AcceptanceSet
	sccAP   *sccmap.Map // DSOG only, nil otherwise
}

// New constructs a product Graph over aut and eng for the given variant.
// DSOG builds its SCC-AP map here, once; PlainSOG and SLOG skip it. FSLTL
// and unknown variants are rejected with ErrUnsupportedVariant.
func New(aut automaton.Automaton, eng engine.SymbolicEngine, variant Variant, opts ...Option) (*Graph, error) {
	if aut == nil {
		return nil, fmt.Errorf("product: New: %w", ErrNilAutomaton)
	}
	if eng == nil {
		return nil, fmt.Errorf("product: New: %w", ErrNilEngine)
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g := &Graph{
		aut:     aut,
		eng:     eng,
		variant: variant,
		dict:    aut.Dictionary(),
		allAcc:  aut.AllAcceptanceConditions(),
	}

	switch variant {
	case PlainSOG, SLOG:
		// no SCC-AP map: these variants never split.
	case DSOG:
		m, err := sccmap.Build(aut, g.dict, o.sccMode)
		if err != nil {
			return nil, fmt.Errorf("product: New: %w", err)
		}
		g.sccAP = m
	default:
		return nil, fmt.Errorf("product: New: variant %s: %w", variant, ErrUnsupportedVariant)
	}

	return g, nil
}

// Variant returns the successor engine this graph was built with.
func (g *Graph) Variant() Variant { return g.variant }

// Dictionary returns the shared AP variable namespace.
func (g *Graph) Dictionary() *apcond.Dictionary { return g.dict }

// AllAcceptanceConditions returns the automaton's full acceptance set.
func (g *Graph) AllAcceptanceConditions() apcond.AcceptanceSet { return g.allAcc }

// NegAcceptanceConditions delegates to the automaton.
func (g *Graph) NegAcceptanceConditions() apcond.AcceptanceSet {
	return g.aut.NegAcceptanceConditions()
}

// InitialState builds the product's initial state. SLOG and PlainSOG pair
// the automaton's initial state with the model's initial aggregate. DSOG
// additionally searches, over the initial SCC's AP variables, for the
// first valuation whose selector keeps the initial aggregate non-empty;
// the valuation found labels the initial state. No valuation matching is
// an invariant violation — the model's initial aggregate always has some
// AP valuation — and panics.
func (g *Graph) InitialState() State {
	q0 := g.aut.InitialState().Clone()

	if g.variant != DSOG {
		return newSLOGState(q0, g.eng.GetInitialState(), g.dict)
	}

	ap := g.sccAP.APOf(q0)
	vars := ap.Variables()

	m0 := g.eng.GetInitialState()
	assertpkg.Invariant(!m0.IsEmpty(), "product: model initial aggregate is empty")

	it := apenum.New(g.dict, vars)
	for it.First(); !it.Done(); it.Next() {
		sel := g.eng.GetSelector(it.Current())
		if !sel.Apply(m0).IsEmpty() {
			return newDSOGState(q0, g.eng, m0, it.Current())
		}
	}
	assertpkg.Invariant(false, "product: no conjunction of AP is verified by the initial aggregate")
	return nil
}

// Successors returns a fresh cursor over the outgoing transitions of s,
// dispatching on the state variant. The cursor starts unpositioned; call
// First before Current. Handing a divergence state to a non-DSOG graph, or
// a foreign State implementation to any graph, is a contract violation.
func (g *Graph) Successors(s State) Cursor {
	switch st := s.(type) {
	case *DivergenceState:
		assertpkg.Invariant(g.variant == DSOG, "product: divergence state in a %s product", g.variant)
		return newDivCursor(st.cond, g.allAcc)
	case *RegularState:
		if g.variant == DSOG {
			return newDSOGCursor(g, st)
		}
		return newSLOGCursor(g, st)
	default:
		assertpkg.Invariant(false, "product: Successors on a foreign State implementation")
		return nil
	}
}

// FormatState renders s for diagnostics: the automaton's own rendering of
// the left component, augmented with the aggregate's size and hash, plus a
// (div) tag on divergent DSOG states.
func (g *Graph) FormatState(s State) string {
	switch st := s.(type) {
	case *RegularState:
		out := fmt.Sprintf("%s *  SDD size: %d hash:%d",
			g.aut.FormatState(st.left), st.right.NbStates(), st.right.Hash())
		if st.div {
			out += " (div)"
		}
		return out
	case *DivergenceState:
		return "DIV STATE"
	default:
		assertpkg.Invariant(false, "product: FormatState on a foreign State implementation")
		return ""
	}
}

// ProjectState projects s onto target: onto this Graph itself it returns a
// clone of s (as a State); onto the underlying Büchi automaton it returns
// the left component (as an automaton.State). Projection onto the system
// side would need the aggregate wrapped in a standalone state type and is
// unsupported: any other target yields (nil, false).
func (g *Graph) ProjectState(s State, target any) (any, bool) {
	switch t := target.(type) {
	case *Graph:
		if t == g {
			return s.Clone(), true
		}
	case automaton.Automaton:
		if rs, ok := s.(*RegularState); ok {
			if proj, ok2 := g.aut.ProjectState(rs.left, t); ok2 {
				return proj, true
			}
		}
	}
	return nil, false
}

// SupportConditions delegates to the automaton on the left component of s.
func (g *Graph) SupportConditions(s State) apcond.Cond {
	rs, ok := s.(*RegularState)
	assertpkg.Invariant(ok, "product: SupportConditions on a non-regular state")
	return g.aut.SupportConditions(rs.left)
}

// SupportVariables delegates to the automaton on the left component of s.
func (g *Graph) SupportVariables(s State) apcond.Cond {
	rs, ok := s.(*RegularState)
	assertpkg.Invariant(ok, "product: SupportVariables on a non-regular state")
	return g.aut.SupportVariables(rs.left)
}

// TransitionAnnotation renders the transition c is currently positioned
// on, delegating to the automaton's own annotation of the underlying left
// iterator. The divergence self-loop, which has no automaton edge, renders
// as div(<cond>).
func (g *Graph) TransitionAnnotation(c Cursor) string {
	if dc, ok := c.(*divCursor); ok {
		return fmt.Sprintf("div(%s)", dc.cond)
	}
	li := c.LeftIterator()
	assertpkg.Invariant(li != nil, "product: TransitionAnnotation on a cursor with no left iterator")
	return g.aut.TransitionAnnotation(li)
}
