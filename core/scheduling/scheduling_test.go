package scheduling_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

// stubStore is an in-memory TaskStore. Tests can inject errors or override
// individual operations.
type stubStore struct {
	mu    sync.Mutex
	tasks map[string]taskrepo.Task
	seq   int

	createErr error
	getErr    error
	queryErr  error
	deleteErr error
	updateErr error

	// Override functions, set by individual tests.
	updateFunc func(ctx context.Context, taskID string, upd taskrepo.UpdateTask) error
	queryFunc  func(recurrenceID string, dueFloor time.Time) ([]taskrepo.Task, error)
}

func newStubStore() *stubStore {
	return &stubStore{tasks: make(map[string]taskrepo.Task)}
}

func (s *stubStore) CreateBatch(ctx context.Context, tasks []taskrepo.CreateTask) ([]taskrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, s.createErr
	}

	records := make([]taskrepo.Task, 0, len(tasks))
	for _, ct := range tasks {
		s.seq++
		task := taskrepo.Task{
			TaskID:       fmt.Sprintf("task-%d", s.seq),
			Title:        ct.Title,
			Description:  ct.Description,
			DueDate:      ct.DueDate,
			Status:       ct.Status,
			Kind:         ct.Kind,
			PlantID:      ct.PlantID,
			SpaceID:      ct.SpaceID,
			RecurrenceID: ct.RecurrenceID,
		}
		s.tasks[task.TaskID] = task
		records = append(records, task)
	}

	return records, nil
}

func (s *stubStore) GetByID(ctx context.Context, taskID string) (taskrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return taskrepo.Task{}, s.getErr
	}

	task, ok := s.tasks[taskID]
	if !ok {
		return taskrepo.Task{}, fmt.Errorf("task %s: %w", taskID, taskrepo.ErrNotFound)
	}
	return task, nil
}

func (s *stubStore) QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]taskrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if s.queryFunc != nil {
		return s.queryFunc(recurrenceID, dueFloor)
	}

	var out []taskrepo.Task
	for _, task := range s.tasks {
		if task.RecurrenceID == nil || *task.RecurrenceID != recurrenceID {
			continue
		}
		if !dueFloor.IsZero() && task.DueDate.Before(dueFloor) {
			continue
		}
		out = append(out, task)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *stubStore) Update(ctx context.Context, taskID string, upd taskrepo.UpdateTask) error {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, taskID, upd)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateErr != nil {
		return s.updateErr
	}

	return s.apply(taskID, upd)
}

// apply mutates a stored task under the lock.
func (s *stubStore) apply(taskID string, upd taskrepo.UpdateTask) error {
	task, ok := s.tasks[taskID]
	if !ok {
		return fmt.Errorf("task %s: %w", taskID, taskrepo.ErrNotFound)
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.DueDate != nil {
		task.DueDate = *upd.DueDate
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}

	s.tasks[taskID] = task
	return nil
}

func (s *stubStore) DeleteByIDs(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}

	for _, id := range ids {
		delete(s.tasks, id)
	}
	return nil
}

// all returns every stored task ordered by due date then id.
func (s *stubStore) all() []taskrepo.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]taskrepo.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].TaskID < out[j].TaskID
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

func (s *stubStore) get(taskID string) (taskrepo.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	return task, ok
}

// seed inserts a task directly, bypassing the engine.
func (s *stubStore) seed(task taskrepo.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = task
}

func newTestEngine(store *stubStore) *scheduling.Engine {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	return scheduling.NewEngine(log, store)
}

func noon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// seedWeeklySeries stores a four-instance weekly series on 2024-01-01,
// 01-08, 01-15 and 01-22 and returns its recurrence id and ids in date
// order.
func seedWeeklySeries(store *stubStore) (string, []string) {
	recurrenceID := "rec-weekly"
	ids := []string{"w1", "w2", "w3", "w4"}
	days := []int{1, 8, 15, 22}

	for i, id := range ids {
		store.seed(taskrepo.Task{
			TaskID:       id,
			Title:        "Water",
			DueDate:      noon(2024, 1, days[i]),
			Status:       taskrepo.StatusPending,
			Kind:         "irrigation",
			PlantID:      strPtr("plant-1"),
			RecurrenceID: &recurrenceID,
		})
	}

	return recurrenceID, ids
}
