package selector

import "fmt"

// Mode is the matching rule a Selector currently applies
type Mode int

const (
	// All matches every suite not marked manual.
	All Mode = iota
	// AutoMatch resolves the pattern against name, module and library,
	// committing to the first granularity that hits.
	AutoMatch
	// Suite matches on suite name only. Manual suites are included.
	Suite
	// Module matches on module. Only reachable from AutoMatch.
	Module
	// Library matches on library.
	Library
	// None matches nothing. Only reachable from AutoMatch.
	None
)

// Modes lists every mode, in declaration order
func Modes() []Mode {
	return []Mode{All, AutoMatch, Suite, Module, Library, None}
}

// String implements the Stringer interface for Mode
func (m Mode) String() string {
	switch m {
	case All:
		return "all"
	case AutoMatch:
		return "automatch"
	case Suite:
		return "suite"
	case Module:
		return "module"
	case Library:
		return "library"
	case None:
		return "none"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Terminal reports whether the mode can no longer transition
func (m Mode) Terminal() bool {
	return m != AutoMatch
}
