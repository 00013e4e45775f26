package product

import "errors"

var (
	// ErrNilAutomaton is returned by New when the Büchi automaton is nil.
	ErrNilAutomaton = errors.New("product: automaton is nil")

	// ErrNilEngine is returned by New when the symbolic engine is nil.
	ErrNilEngine = errors.New("product: symbolic engine is nil")

	// ErrUnsupportedVariant is returned by New for FSLTL (outside this
	// module's scope) or an unknown Variant value.
	ErrUnsupportedVariant = errors.New("product: unsupported product variant")
)
