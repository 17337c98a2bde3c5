package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovision-ai/miner-sync/models"
)

func newTestSelection(t *testing.T) (SelectionService, RecordService) {
	t.Helper()
	records := newTestRecordService(t, &fakeRecordStore{}, 1<<20)
	return NewSelectionService(records), records
}

func TestSelectionService_SelectAndDeselect(t *testing.T) {
	sel, records := newTestSelection(t)
	id, err := records.AddRecord(context.Background(), models.DrillHole, map[string]any{"depth_m": 42})
	require.NoError(t, err)

	sel.Select(id)
	assert.Equal(t, []string{id}, sel.Selected())

	// Selecting twice keeps set semantics.
	sel.Select(id)
	assert.Len(t, sel.Selected(), 1)

	sel.Deselect(id)
	assert.Empty(t, sel.Selected())
}

func TestSelectionService_SelectUnknownIDIsInert(t *testing.T) {
	sel, _ := newTestSelection(t)

	sel.Select("no-such-record")
	assert.Empty(t, sel.Selected())
}

func TestSelectionService_SelectAllAndClear(t *testing.T) {
	sel, records := newTestSelection(t)
	addPending(t, records, 3)

	sel.SelectAll()
	assert.Len(t, sel.Selected(), 3)

	sel.ClearSelection()
	assert.Empty(t, sel.Selected())
}

func TestSelectionService_DeleteSelected(t *testing.T) {
	sel, records := newTestSelection(t)
	ids := addPending(t, records, 3)

	sel.Select(ids[0])
	sel.Select(ids[2])
	sel.DeleteSelected(context.Background())

	remaining := records.Records()
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[1], remaining[0].ID)
	assert.Empty(t, sel.Selected(), "deletion must clear the selection")
}

func TestSelectionService_DeleteSelected_EmptySelectionIsNoop(t *testing.T) {
	sel, records := newTestSelection(t)
	addPending(t, records, 2)

	sel.DeleteSelected(context.Background())
	assert.Len(t, records.Records(), 2)
}

func TestSelectionService_DeleteSelected_Twice(t *testing.T) {
	sel, records := newTestSelection(t)
	addPending(t, records, 2)

	sel.SelectAll()
	sel.DeleteSelected(context.Background())
	sel.DeleteSelected(context.Background())

	assert.Empty(t, records.Records())
}
