package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuiteInfoFullName(t *testing.T) {
	tests := []struct {
		name     string
		suite    SuiteInfo
		expected string
	}{
		{
			name:     "all components",
			suite:    SuiteInfo{LibraryName: "ripple", ModuleName: "app", SuiteName: "Offer"},
			expected: "ripple.app.Offer",
		},
		{
			name:     "missing module",
			suite:    SuiteInfo{LibraryName: "beast", SuiteName: "Zero"},
			expected: "beast.Zero",
		},
		{
			name:     "name only",
			suite:    SuiteInfo{SuiteName: "Lonely"},
			expected: "Lonely",
		},
		{
			name:     "empty",
			suite:    SuiteInfo{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.suite.FullName())
			assert.Equal(t, tt.expected, tt.suite.String())
		})
	}
}

func TestSuiteInfoDescriptor(t *testing.T) {
	var d Descriptor = SuiteInfo{
		SuiteName:   "Offer",
		ModuleName:  "app",
		LibraryName: "ripple",
		IsManual:    true,
	}

	assert.Equal(t, "Offer", d.Name())
	assert.Equal(t, "app", d.Module())
	assert.Equal(t, "ripple", d.Library())
	assert.True(t, d.Manual())
}
