package tt

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------
// Assertion Helpers
// -----------------------------------------------------------------------------

// Diff returns a unified diff between two multi-line strings. Returns
// the empty string when they are equal.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return "failed to diff: " + err.Error()
	}
	return diff
}

// AssertMultilineEqual fails with a unified diff when the two strings
// differ. Much easier to read than testify's inline dump for long
// rendered output.
func AssertMultilineEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := Diff(expected, actual); diff != "" {
		assert.Fail(t, "strings differ", "\n%s", diff)
	}
}
