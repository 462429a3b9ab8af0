package scheduling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
)

func TestDeleteTask(t *testing.T) {
	store := newStubStore()
	_, ids := seedWeeklySeries(store)
	engine := newTestEngine(store)

	err := engine.DeleteTask(context.Background(), "w2")
	require.NoError(t, err)

	_, ok := store.get("w2")
	assert.False(t, ok)

	// The remaining siblings keep their series membership.
	for _, id := range []string{ids[0], ids[2], ids[3]} {
		task, ok := store.get(id)
		require.True(t, ok)
		assert.NotNil(t, task.RecurrenceID)
	}
}

func TestDeleteTaskEmptyID(t *testing.T) {
	store := newStubStore()
	engine := newTestEngine(store)

	err := engine.DeleteTask(context.Background(), "")
	require.ErrorIs(t, err, scheduling.ErrNoIDs)
}

func TestDeleteTasks(t *testing.T) {
	store := newStubStore()
	_, _ = seedWeeklySeries(store)
	store.seed(taskrepo.Task{TaskID: "solo", Title: "Repot", DueDate: noon(2024, 2, 1), Status: taskrepo.StatusPending, Kind: "transplant"})
	engine := newTestEngine(store)

	err := engine.DeleteTasks(context.Background(), []string{"w1", "w4", "solo"})
	require.NoError(t, err)

	assert.Len(t, store.all(), 2)
	_, ok := store.get("w2")
	assert.True(t, ok)
	_, ok = store.get("w3")
	assert.True(t, ok)
}

func TestDeleteTasksEmptySet(t *testing.T) {
	store := newStubStore()
	engine := newTestEngine(store)

	err := engine.DeleteTasks(context.Background(), nil)
	require.ErrorIs(t, err, scheduling.ErrNoIDs)
}

func TestDeleteTaskSeriesAll(t *testing.T) {
	store := newStubStore()
	recurrenceID, _ := seedWeeklySeries(store)
	other := "rec-other"
	store.seed(taskrepo.Task{TaskID: "o1", Title: "Feed", DueDate: noon(2024, 1, 3), Status: taskrepo.StatusPending, Kind: "feeding", RecurrenceID: &other})
	engine := newTestEngine(store)

	err := engine.DeleteTaskSeries(context.Background(), recurrenceID, "w1", scheduling.DeleteScopeAll)
	require.NoError(t, err)

	tasks := store.all()
	require.Len(t, tasks, 1, "only the unrelated series survives")
	assert.Equal(t, "o1", tasks[0].TaskID)
}

func TestDeleteTaskSeriesThis(t *testing.T) {
	store := newStubStore()
	recurrenceID, ids := seedWeeklySeries(store)
	engine := newTestEngine(store)

	err := engine.DeleteTaskSeries(context.Background(), recurrenceID, "w3", scheduling.DeleteScopeThis)
	require.NoError(t, err)

	_, ok := store.get("w3")
	assert.False(t, ok)

	for _, id := range []string{ids[0], ids[1], ids[3]} {
		_, ok := store.get(id)
		assert.True(t, ok, "scope this removes only the anchor")
	}
}

func TestDeleteTaskSeriesThisStaleAnchor(t *testing.T) {
	store := newStubStore()
	recurrenceID, _ := seedWeeklySeries(store)
	engine := newTestEngine(store)

	err := engine.DeleteTaskSeries(context.Background(), recurrenceID, "gone", scheduling.DeleteScopeThis)
	require.ErrorIs(t, err, taskrepo.ErrNotFound)

	assert.Len(t, store.all(), 4, "a stale reference deletes nothing")
}

func TestDeleteTaskSeriesAllUnknownRecurrence(t *testing.T) {
	store := newStubStore()
	_, _ = seedWeeklySeries(store)
	engine := newTestEngine(store)

	err := engine.DeleteTaskSeries(context.Background(), "rec-missing", "w1", scheduling.DeleteScopeAll)
	require.ErrorIs(t, err, taskrepo.ErrNotFound)
	assert.Len(t, store.all(), 4)
}

func TestDeleteTaskSeriesValidation(t *testing.T) {
	store := newStubStore()
	recurrenceID, _ := seedWeeklySeries(store)
	engine := newTestEngine(store)

	err := engine.DeleteTaskSeries(context.Background(), "", "w1", scheduling.DeleteScopeAll)
	require.ErrorIs(t, err, scheduling.ErrNoRecurrence)

	err = engine.DeleteTaskSeries(context.Background(), recurrenceID, "w1", "future")
	require.ErrorIs(t, err, scheduling.ErrUnknownDeleteMode)

	assert.Len(t, store.all(), 4)
}
