package opselector

import (
	"fmt"
	"time"

	"github.com/ethereum-optimism/infra/op-selector/selector"
	"github.com/ethereum-optimism/infra/op-selector/types"
)

// Transition records the suite that moved an AutoMatch selector into its
// final mode
type Transition struct {
	From          selector.Mode
	To            selector.Mode
	Trigger       types.SuiteInfo
	LockedLibrary string
}

// Result is the outcome of a single selection run
type Result struct {
	RunID      string
	Initial    selector.Selector
	Final      selector.Selector
	Transition *Transition // nil when the mode never changed
	Selected   []types.SuiteInfo
	Considered int
	Duration   time.Duration
}

// Empty reports whether the run selected nothing
func (r *Result) Empty() bool {
	return len(r.Selected) == 0
}

// String returns a one-line summary of the run
func (r *Result) String() string {
	return fmt.Sprintf("selected %d of %d suites with %s (final mode: %s)",
		len(r.Selected), r.Considered, r.Initial, r.Final.Mode())
}
