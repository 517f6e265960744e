package ledgerview_test

import (
	"testing"

	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/stretchr/testify/assert"
)

func TestSelectionTracker_SelectAndDeselect(t *testing.T) {
	sel := ledgerview.NewSelectionTracker()

	sel.Select("a", true)
	sel.Select("b", true)
	assert.True(t, sel.IsSelected("a"))
	assert.True(t, sel.IsSelected("b"))
	assert.Equal(t, 2, sel.Count())

	sel.Select("a", false)
	assert.False(t, sel.IsSelected("a"))
	assert.Equal(t, 1, sel.Count())

	// Deselecting an unknown identity is a no-op.
	sel.Select("ghost", false)
	assert.Equal(t, 1, sel.Count())
}

func TestSelectionTracker_SelectAll(t *testing.T) {
	sel := ledgerview.NewSelectionTracker()

	sel.SelectAll([]string{"a", "b", "b", "c"}, true)
	assert.Equal(t, 3, sel.Count()) // duplicates collapse
	assert.ElementsMatch(t, []string{"a", "b", "c"}, sel.Selected())

	sel.SelectAll([]string{"a", "c"}, false)
	assert.ElementsMatch(t, []string{"b"}, sel.Selected())
}

func TestSelectionTracker_Clear(t *testing.T) {
	sel := ledgerview.NewSelectionTracker()
	sel.SelectAll([]string{"a", "b"}, true)
	sel.Clear()
	assert.Zero(t, sel.Count())
	assert.False(t, sel.IsSelected("a"))
}

func TestSelection_SurvivesPartitionToggle(t *testing.T) {
	state := ledgerview.NewViewState("party-1")
	state.Selection().Select("entry-A", true)

	// Toggle to a partition that does not contain the entry and back.
	state.SetShowOldRecords(true)
	state.SetShowOldRecords(false)

	assert.True(t, state.Selection().IsSelected("entry-A"))
}
