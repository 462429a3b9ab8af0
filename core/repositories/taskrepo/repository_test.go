package taskrepo_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

// recordingStorer captures the calls the repository forwards to its store.
type recordingStorer struct {
	lastUpdate taskrepo.UpdateTask
	lastTaskID string
	err        error
}

func (s *recordingStorer) CreateBatch(ctx context.Context, tasks []taskrepo.CreateTask) ([]taskrepo.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]taskrepo.Task, len(tasks))
	for i, ct := range tasks {
		records[i] = taskrepo.Task{Title: ct.Title, DueDate: ct.DueDate, Status: ct.Status}
	}
	return records, nil
}

func (s *recordingStorer) GetByID(ctx context.Context, taskID string) (taskrepo.Task, error) {
	return taskrepo.Task{TaskID: taskID}, s.err
}

func (s *recordingStorer) QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]taskrepo.Task, error) {
	return nil, s.err
}

func (s *recordingStorer) Query(ctx context.Context, filter taskrepo.QueryFilter) ([]taskrepo.Task, error) {
	return nil, s.err
}

func (s *recordingStorer) Update(ctx context.Context, taskID string, upd taskrepo.UpdateTask) error {
	s.lastTaskID = taskID
	s.lastUpdate = upd
	return s.err
}

func (s *recordingStorer) DeleteByIDs(ctx context.Context, ids []string) error {
	return s.err
}

func newRepo(storer taskrepo.Storer) *taskrepo.Repository {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	return taskrepo.NewRepository(log, storer)
}

func TestSetStatus(t *testing.T) {
	storer := &recordingStorer{}
	repo := newRepo(storer)

	err := repo.SetStatus(context.Background(), "task-1", taskrepo.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, "task-1", storer.lastTaskID)
	require.NotNil(t, storer.lastUpdate.Status)
	assert.Equal(t, taskrepo.StatusCompleted, *storer.lastUpdate.Status)
	assert.Nil(t, storer.lastUpdate.DueDate, "status toggles never touch other fields")
	assert.Nil(t, storer.lastUpdate.Title)
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	storer := &recordingStorer{}
	repo := newRepo(storer)

	err := repo.SetStatus(context.Background(), "task-1", "archived")
	require.Error(t, err)
	assert.Empty(t, storer.lastTaskID, "invalid statuses never reach the store")
}

func TestRepositoryWrapsStoreErrors(t *testing.T) {
	storer := &recordingStorer{err: assert.AnError}
	repo := newRepo(storer)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "task-1")
	require.ErrorIs(t, err, assert.AnError)

	_, err = repo.CreateBatch(ctx, []taskrepo.CreateTask{{Title: "Water"}})
	require.ErrorIs(t, err, assert.AnError)

	err = repo.DeleteByIDs(ctx, []string{"task-1"})
	require.ErrorIs(t, err, assert.AnError)
}
