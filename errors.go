package opselector

import (
	"errors"
	"fmt"
)

// RuntimeError represents an operational error that should lead to exit code 2
// Examples include configuration errors, an unreadable catalog, etc.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// EmptySelectionError is returned when a run selected no suites and the
// caller asked for that to be treated as a failure (exit code 1)
type EmptySelectionError struct {
	Selector string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no suites selected by %s", e.Selector)
}

// NewEmptySelectionError creates a new EmptySelectionError
func NewEmptySelectionError(selector string) *EmptySelectionError {
	return &EmptySelectionError{Selector: selector}
}

// IsEmptySelectionError checks if the error is or wraps an EmptySelectionError
func IsEmptySelectionError(err error) bool {
	var emptyErr *EmptySelectionError
	return err != nil && errors.As(err, &emptyErr)
}
