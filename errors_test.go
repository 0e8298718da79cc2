package opselector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError(t *testing.T) {
	base := errors.New("catalog missing")
	err := fmt.Errorf("startup: %w", NewRuntimeError(base))

	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsEmptySelectionError(err))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "startup: runtime error: catalog missing", err.Error())
}

func TestEmptySelectionError(t *testing.T) {
	err := fmt.Errorf("run: %w", NewEmptySelectionError(`automatch("X")`))

	assert.True(t, IsEmptySelectionError(err))
	assert.False(t, IsRuntimeError(err))
	assert.Contains(t, err.Error(), `no suites selected by automatch("X")`)
}

func TestNilErrors(t *testing.T) {
	assert.False(t, IsRuntimeError(nil))
	assert.False(t, IsEmptySelectionError(nil))
}
