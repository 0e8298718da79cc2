package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/infra/op-selector/types"
)

func suite(library, module, name string, manual bool) types.SuiteInfo {
	return types.SuiteInfo{
		LibraryName: library,
		ModuleName:  module,
		SuiteName:   name,
		IsManual:    manual,
	}
}

func names(suites []types.SuiteInfo) []string {
	out := make([]string, 0, len(suites))
	for _, s := range suites {
		out = append(out, s.Name())
	}
	return out
}

var catalog = []types.SuiteInfo{
	suite("L1", "M1", "A", false),
	suite("L1", "M1", "B", false),
	suite("L1", "M2", "C", true),
	suite("L2", "M3", "D", false),
	suite("L2", "M3", "E", true),
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		mode    Mode
		pattern string
	}{
		{name: "auto", sel: MatchAuto("X"), mode: AutoMatch, pattern: "X"},
		{name: "auto empty pattern", sel: MatchAuto(""), mode: All, pattern: ""},
		{name: "all", sel: MatchAll(), mode: All, pattern: ""},
		{name: "suite", sel: MatchSuite("X"), mode: Suite, pattern: "X"},
		{name: "library", sel: MatchLibrary("X"), mode: Library, pattern: "X"},
		{name: "zero value", sel: Selector{}, mode: All, pattern: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mode, tt.sel.Mode())
			assert.Equal(t, tt.pattern, tt.sel.Pattern())
			assert.Empty(t, tt.sel.LockedLibrary())
		})
	}
}

func TestAllExcludesManual(t *testing.T) {
	sel := MatchAll()
	for _, d := range catalog {
		assert.Equal(t, !d.Manual(), sel.Test(d), d.FullName())
	}
	assert.Equal(t, All, sel.Mode())
}

func TestSuiteIgnoresManual(t *testing.T) {
	for _, manual := range []bool{false, true} {
		sel := MatchSuite("X")
		assert.True(t, sel.Test(suite("L", "M", "X", manual)))
		assert.False(t, sel.Test(suite("L", "X", "Y", false)), "module is not consulted")
		assert.False(t, sel.Test(suite("X", "M", "Y", false)), "library is not consulted")
		assert.True(t, sel.Test(suite("L2", "M2", "X", manual)), "suite mode never narrows")
		assert.Equal(t, Suite, sel.Mode())
	}
}

func TestSuiteDoesNotMatchFullName(t *testing.T) {
	sel := MatchSuite("L.M.X")
	assert.False(t, sel.Test(suite("L", "M", "X", false)))
}

func TestEmptyAutoMatchBehavesAsAll(t *testing.T) {
	sel := MatchAuto("")
	for _, d := range catalog {
		assert.Equal(t, !d.Manual(), sel.Test(d), d.FullName())
		assert.Equal(t, All, sel.Mode(), "never transitions")
	}
}

func TestAutoMatchSuiteCommitsToNone(t *testing.T) {
	sel := MatchAuto("X")

	d1 := suite("L", "M", "X", true)
	d2 := suite("L", "X", "Y", false)

	assert.True(t, sel.Test(d1), "exact name matches even when manual")
	assert.Equal(t, None, sel.Mode())
	assert.False(t, sel.Test(d2), "module match is no longer considered")
}

func TestAutoMatchFullName(t *testing.T) {
	sel := MatchAuto("L1.M1.B")
	selected, final := Select(sel, catalog)

	assert.Equal(t, []string{"B"}, names(selected))
	assert.Equal(t, None, final.Mode())
}

func TestAutoMatchModuleCommitsToModule(t *testing.T) {
	sel := MatchAuto("M")

	d1 := suite("L", "M", "S1", false)
	d2 := suite("L", "M", "S2", true)
	d3 := suite("M", "Other", "S3", false)

	assert.True(t, sel.Test(d1))
	assert.Equal(t, Module, sel.Mode())
	assert.Equal(t, "L", sel.LockedLibrary())

	assert.False(t, sel.Test(d2), "manual excluded in module mode")
	assert.False(t, sel.Test(d3), "library no longer consulted")
	assert.Equal(t, Module, sel.Mode())
}

func TestAutoMatchManualModuleHitStillCommits(t *testing.T) {
	sel := MatchAuto("M")

	assert.False(t, sel.Test(suite("L", "M", "S1", true)))
	assert.Equal(t, Module, sel.Mode())
	assert.Equal(t, "L", sel.LockedLibrary())
	assert.True(t, sel.Test(suite("L", "M", "S2", false)))
}

func TestAutoMatchLibraryCommitsToLibrary(t *testing.T) {
	sel := MatchAuto("L2")
	selected, final := Select(sel, catalog)

	assert.Equal(t, []string{"D"}, names(selected))
	assert.Equal(t, Library, final.Mode())
	assert.Empty(t, final.LockedLibrary())
}

func TestAutoMatchPriority(t *testing.T) {
	// A single suite whose name, module and library all equal the pattern
	// resolves by name first.
	sel := MatchAuto("X")
	assert.True(t, sel.Test(suite("X", "X", "X", true)))
	assert.Equal(t, None, sel.Mode())

	// Module beats library on the same suite.
	sel = MatchAuto("X")
	assert.True(t, sel.Test(suite("X", "X", "S", false)))
	assert.Equal(t, Module, sel.Mode())
}

func TestAutoMatchNoHitKeepsMode(t *testing.T) {
	sel := MatchAuto("nothing")
	selected, final := Select(sel, catalog)

	assert.Empty(t, selected)
	assert.Equal(t, AutoMatch, final.Mode())
}

// The first suite that resolves the pattern fixes the granularity, so the
// order of the catalog decides which mode the selector commits to.
func TestAutoMatchOrderSensitivity(t *testing.T) {
	byModule := suite("L", "X", "S1", false)
	byLibrary := suite("X", "M", "S2", false)

	moduleFirst, final := Select(MatchAuto("X"), []types.SuiteInfo{byModule, byLibrary})
	assert.Equal(t, []string{"S1"}, names(moduleFirst))
	assert.Equal(t, Module, final.Mode())

	libraryFirst, final := Select(MatchAuto("X"), []types.SuiteInfo{byLibrary, byModule})
	assert.Equal(t, []string{"S2"}, names(libraryFirst))
	assert.Equal(t, Library, final.Mode())
}

func TestNoneIsAbsorbing(t *testing.T) {
	sel := MatchAuto("A")
	require.True(t, sel.Test(catalog[0]))
	require.Equal(t, None, sel.Mode())

	for _, d := range catalog {
		assert.False(t, sel.Test(d), d.FullName())
	}
	assert.False(t, sel.Test(suite("L1", "M1", "A", false)), "same suite again")
	assert.Equal(t, None, sel.Mode())
}

func TestModuleScenario(t *testing.T) {
	suites := []types.SuiteInfo{
		suite("L1", "M1", "A", false),
		suite("L1", "M1", "B", false),
		suite("L1", "M2", "C", true),
	}

	selected, final := Select(MatchAuto("M1"), suites)

	assert.Equal(t, []string{"A", "B"}, names(selected))
	assert.Equal(t, Module, final.Mode())
	assert.Equal(t, "L1", final.LockedLibrary())
}

func TestMatchDoesNotMutateReceiver(t *testing.T) {
	sel := MatchAuto("M1")

	ok, next := sel.Match(catalog[0])
	assert.True(t, ok)
	assert.Equal(t, Module, next.Mode())
	assert.Equal(t, AutoMatch, sel.Mode(), "receiver unchanged")

	// Replaying the original state against a different first suite
	// commits differently.
	ok, other := sel.Match(suite("M1", "Z", "Q", false))
	assert.True(t, ok)
	assert.Equal(t, Library, other.Mode())
}

func TestLibraryMode(t *testing.T) {
	selected, final := Select(MatchLibrary("L1"), catalog)
	assert.Equal(t, []string{"A", "B"}, names(selected))
	assert.Equal(t, Library, final.Mode())

	selected, _ = Select(MatchLibrary("M1"), catalog)
	assert.Empty(t, selected, "library mode never looks at modules")
}

func TestSelectPreservesOrder(t *testing.T) {
	selected, _ := Select(MatchAll(), catalog)
	assert.Equal(t, []string{"A", "B", "D"}, names(selected))
}

func TestUnknownModeMatchesNothing(t *testing.T) {
	sel := New(Mode(42), "A")
	ok, next := sel.Match(catalog[0])
	assert.False(t, ok)
	assert.Equal(t, Mode(42), next.Mode())
}

func TestModeString(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Modes() {
		s := m.String()
		assert.NotContains(t, s, "mode(", "every declared mode has a name")
		assert.False(t, seen[s], "duplicate name %s", s)
		seen[s] = true
	}
	assert.Equal(t, "mode(42)", Mode(42).String())
}

func TestModeTerminal(t *testing.T) {
	for _, m := range Modes() {
		assert.Equal(t, m != AutoMatch, m.Terminal(), m.String())
	}
}

func TestSelectorString(t *testing.T) {
	assert.Equal(t, "all", MatchAll().String())
	assert.Equal(t, `automatch("M1")`, MatchAuto("M1").String())
	assert.Equal(t, `suite("A")`, MatchSuite("A").String())
}
