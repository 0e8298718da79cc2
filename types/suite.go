// Package types contains shared types used across the suite selection tooling
package types

import "strings"

// Descriptor is the read-only view of a test suite that selection operates on.
type Descriptor interface {
	// Name is the suite identifier.
	Name() string
	// FullName is the library-qualified identifier, eg. "ripple.app.Offer".
	FullName() string
	// Module is the mid-level grouping the suite belongs to.
	Module() string
	// Library is the top-level grouping the suite belongs to.
	Library() string
	// Manual suites are never swept in by a broad match.
	Manual() bool
}

// SuiteInfo describes a single suite loaded from a catalog manifest
type SuiteInfo struct {
	SuiteName   string
	ModuleName  string
	LibraryName string
	IsManual    bool
	Package     string // Go package the suite lives in, if known
	Description string
}

var _ Descriptor = SuiteInfo{}

func (s SuiteInfo) Name() string    { return s.SuiteName }
func (s SuiteInfo) Module() string  { return s.ModuleName }
func (s SuiteInfo) Library() string { return s.LibraryName }
func (s SuiteInfo) Manual() bool    { return s.IsManual }

// FullName joins library, module and name with '.', skipping empty components
func (s SuiteInfo) FullName() string {
	return JoinFullName(s.LibraryName, s.ModuleName, s.SuiteName)
}

// String implements the Stringer interface for SuiteInfo
func (s SuiteInfo) String() string {
	return s.FullName()
}

// JoinFullName builds a library-qualified suite name
func JoinFullName(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
