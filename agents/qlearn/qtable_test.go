package qlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQTable_GetIsNonMutating(t *testing.T) {
	table := NewQTable()

	assert.Equal(t, 0.0, table.Get("s1", "a"))
	assert.Equal(t, 0, table.Len(), "a lookup must not materialize an entry")

	table.Set("s1", "a", 1.25)
	assert.Equal(t, 1.25, table.Get("s1", "a"))
	assert.Equal(t, 1, table.Len())
}

func TestQTable_MeanAndStates(t *testing.T) {
	table := NewQTable()
	assert.Equal(t, 0.0, table.Mean(), "empty table has mean 0.0")
	assert.Equal(t, 0, table.States())

	table.Set("s1", "a", 1.0)
	table.Set("s1", "b", 3.0)
	table.Set("s2", "a", 5.0)

	assert.InDelta(t, 3.0, table.Mean(), 1e-9)
	assert.Equal(t, 2, table.States())
}

func TestQTable_Entries(t *testing.T) {
	table := NewQTable()
	table.Set("s1", "a", 1.0)
	table.Set("s1", "b", 2.0)
	table.Set("s2", "a", 3.0)

	entries := table.Entries()

	assert.Equal(t, map[string]map[string]float64{
		"s1": {"a": 1.0, "b": 2.0},
		"s2": {"a": 3.0},
	}, entries)

	// The copy is detached from the live table.
	entries["s1"]["a"] = 99.0
	assert.Equal(t, 1.0, table.Get("s1", "a"))
}
