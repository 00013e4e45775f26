package product

import (
	"github.com/yanntm/its-ltl-core/sccmap"
)

// Variant selects which successor engine a Graph instantiates. Only
// PlainSOG, SLOG and DSOG are buildable here; FSLTL is outside this
// module's scope and rejected by New.
type Variant int

const (
	// PlainSOG is the degenerate SLOG: no weaker-self-loop saturation, the
	// closure condition is forced to false so each successor aggregate is
	// exactly the one-step entry set.
	PlainSOG Variant = iota
	// SLOG is the Symbolic Linear-time Observation Graph: successor
	// aggregates are saturated under automaton-absorbed AP conditions.
	SLOG
	// DSOG is the divergence-aware SOG: SLOG-style products plus explicit
	// divergence meta-states and per-SCC AP splitting.
	DSOG
	// FSLTL names the fourth product family for completeness; New rejects
	// it with ErrUnsupportedVariant.
	FSLTL
)

// String renders the variant's conventional short name.
func (v Variant) String() string {
	switch v {
	case PlainSOG:
		return "SOG"
	case SLOG:
		return "SLOG"
	case DSOG:
		return "DSOG"
	case FSLTL:
		return "FSLTL"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of a product Graph.
// Use with New(aut, eng, variant, opts...).
type Option func(*options)

type options struct {
	// sccMode controls how the DSOG variant's SCC-AP map narrows AP
	// enumeration; ignored by PlainSOG and SLOG, which never split.
	sccMode sccmap.BuildMode
}

func defaultOptions() options {
	return options{sccMode: sccmap.Standard}
}

// WithSCCBuildMode returns an Option selecting the SCC-AP map's BuildMode
// for the DSOG variant: Standard (the default narrowing), Off (no
// narrowing — every state splits over the full variable universe) or Full.
func WithSCCBuildMode(mode sccmap.BuildMode) Option {
	return func(o *options) {
		o.sccMode = mode
	}
}
