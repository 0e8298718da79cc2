package selector

import (
	"fmt"

	"github.com/ethereum-optimism/infra/op-selector/types"
)

// Selector is the suite selection predicate. The zero value selects every
// suite not marked manual.
type Selector struct {
	mode          Mode
	pattern       string
	lockedLibrary string
}

// New creates a selector with the given starting mode and pattern.
// An AutoMatch selector with an empty pattern behaves as All.
func New(mode Mode, pattern string) Selector {
	if mode == AutoMatch && pattern == "" {
		mode = All
	}
	return Selector{mode: mode, pattern: pattern}
}

// MatchAuto returns a selector that implements the smart matching rule.
// It checks the suite name (or full name), module and library of each suite
// in that order, and changes mode on the first hit:
//
//   - a suite match selects only that suite, manual or not;
//   - a module match selects suites of that module not marked manual;
//   - a library match selects suites of that library not marked manual.
func MatchAuto(pattern string) Selector {
	return New(AutoMatch, pattern)
}

// MatchAll returns a selector that matches all suites not marked manual.
func MatchAll() Selector {
	return New(All, "")
}

// MatchSuite returns a selector that matches a specific suite by name.
func MatchSuite(name string) Selector {
	return New(Suite, name)
}

// MatchLibrary returns a selector that matches all suites in a library.
func MatchLibrary(name string) Selector {
	return New(Library, name)
}

// Mode is the matching rule currently in effect.
func (s Selector) Mode() Mode { return s.mode }

// Pattern is the text supplied at construction. It never changes.
func (s Selector) Pattern() string { return s.pattern }

// LockedLibrary is the library of the suite that moved an AutoMatch selector
// into Module mode. It is empty otherwise and is not used for matching.
func (s Selector) LockedLibrary() string { return s.lockedLibrary }

// String implements the Stringer interface for Selector
func (s Selector) String() string {
	if s.pattern == "" {
		return s.mode.String()
	}
	return fmt.Sprintf("%s(%q)", s.mode, s.pattern)
}

// Match evaluates d and returns the decision along with the selector state to
// use for the next suite. The receiver is left untouched.
func (s Selector) Match(d types.Descriptor) (bool, Selector) {
	switch s.mode {
	case AutoMatch:
		if s.pattern == d.Name() || s.pattern == d.FullName() {
			s.mode = None
			return true, s
		}
		if s.pattern == d.Module() {
			s.mode = Module
			s.lockedLibrary = d.Library()
			return !d.Manual(), s
		}
		if s.pattern == d.Library() {
			s.mode = Library
			return !d.Manual(), s
		}
		return false, s

	case Suite:
		return s.pattern == d.Name(), s

	case Module:
		return s.pattern == d.Module() && !d.Manual(), s

	case Library:
		return s.pattern == d.Library() && !d.Manual(), s

	case None:
		return false, s

	case All:
		return !d.Manual(), s
	}

	// Only reachable through a Mode value outside the declared set.
	return false, s
}

// Test evaluates d and advances the selector in place.
func (s *Selector) Test(d types.Descriptor) bool {
	ok, next := s.Match(d)
	*s = next
	return ok
}

// Select makes a single forward pass over suites in order, returning the
// matching suites in that same order and the final selector state.
func Select[D types.Descriptor](sel Selector, suites []D) ([]D, Selector) {
	var selected []D
	for _, d := range suites {
		if sel.Test(d) {
			selected = append(selected, d)
		}
	}
	return selected, sel
}
