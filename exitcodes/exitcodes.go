// Package exitcodes defines the standard exit codes used by op-selector.
package exitcodes

// Exit code constants used by op-selector
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when selection completed (including an empty selection by default)
// * EmptySelection (1): Used when nothing was selected and --fail-on-empty is set
// * RuntimeErr (2): Used for runtime errors such as an unreadable catalog or bad flags
const (
	Success        = 0 // Selection completed
	EmptySelection = 1 // No suites selected with --fail-on-empty
	RuntimeErr     = 2 // Runtime errors
)
