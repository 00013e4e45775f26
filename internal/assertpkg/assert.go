// Package assertpkg is the single place this module panics. Failures come
// in two kinds: recoverable runtime conditions (empty successor
// aggregates, empty AP enumerations — both normal control flow, reported
// through ordinary Go return values) and contract violations (a wrong
// product-state variant handed to a cursor, a forbidden null aggregate, no
// AP valuation satisfying the initial aggregate) which indicate a defect
// in composition, not a runtime condition. Go's idiom for the latter is a
// panic, not an error return: callers cannot usefully recover from a
// broken invariant, and an error value would invite exactly the defensive
// handling a fatal assertion exists to rule out.
package assertpkg

import "fmt"

// Invariant panics with a formatted message if cond is false. Reserved for
// contract violations; never for conditions a well-formed caller can hit
// in normal operation.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
