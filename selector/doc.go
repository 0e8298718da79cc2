// Package selector decides which test suites a run should execute.
//
// A Selector is a small finite-state machine. It is built once per run by one
// of the Match* constructors and then consulted once per suite, in catalog
// order. Most modes are pure predicates. AutoMatch is not: the first suite
// that resolves the pattern (by name, then module, then library) commits the
// selector to that granularity for the rest of the run.
//
//	sel := selector.MatchAuto("app")
//	for _, s := range suites {
//		if sel.Test(s) {
//			run(s)
//		}
//	}
//
// Because the AutoMatch commitment depends on which suite is seen first, a
// Selector in AutoMatch mode must not be evaluated concurrently or out of
// order. Match returns the next state instead of mutating the receiver, so
// callers that want value semantics can thread it explicitly.
package selector
