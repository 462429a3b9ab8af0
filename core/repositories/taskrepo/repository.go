// Package taskrepo provides access to stored task instances. The Storer
// interface is the gateway the scheduling engine works against; the Postgres
// implementation lives in stores/taskpgxstore.
package taskrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cultivarhq/cultivar/sdk/logger"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrNotFound = errors.New("task not found")
)

// Storer defines the data storage interface for tasks.
type Storer interface {
	CreateBatch(ctx context.Context, tasks []CreateTask) ([]Task, error)
	GetByID(ctx context.Context, taskID string) (Task, error)
	QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]Task, error)
	Query(ctx context.Context, filter QueryFilter) ([]Task, error)
	Update(ctx context.Context, taskID string, upd UpdateTask) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// CreateBatch persists a set of task instances as one batch. Either every
// instance is handed to the store or the call fails before any write.
func (r *Repository) CreateBatch(ctx context.Context, tasks []CreateTask) ([]Task, error) {
	records, err := r.storer.CreateBatch(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("task repository create batch: %w", err)
	}

	r.log.InfoContext(ctx, "tasks created", "count", len(records))
	return records, nil
}

// GetByID returns a single task instance.
func (r *Repository) GetByID(ctx context.Context, taskID string) (Task, error) {
	record, err := r.storer.GetByID(ctx, taskID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get by id: %w", err)
	}
	return record, nil
}

// QueryByRecurrence returns every instance of a series due on or after
// dueFloor. A zero dueFloor returns the whole series.
func (r *Repository) QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]Task, error) {
	records, err := r.storer.QueryByRecurrence(ctx, recurrenceID, dueFloor)
	if err != nil {
		return nil, fmt.Errorf("task repository query by recurrence: %w", err)
	}
	return records, nil
}

// Query returns the task instances matching the filter, ordered by due date.
func (r *Repository) Query(ctx context.Context, filter QueryFilter) ([]Task, error) {
	records, err := r.storer.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("task repository query: %w", err)
	}
	return records, nil
}

// Update applies a partial update to one task instance.
func (r *Repository) Update(ctx context.Context, taskID string, upd UpdateTask) error {
	if err := r.storer.Update(ctx, taskID, upd); err != nil {
		return fmt.Errorf("task repository update: %w", err)
	}
	return nil
}

// SetStatus toggles a task between pending and completed. This is the only
// path that writes status; series mutations leave it alone.
func (r *Repository) SetStatus(ctx context.Context, taskID string, status string) error {
	if status != StatusPending && status != StatusCompleted {
		return fmt.Errorf("task repository set status: unknown status %q", status)
	}

	if err := r.storer.Update(ctx, taskID, UpdateTask{Status: &status}); err != nil {
		return fmt.Errorf("task repository set status: %w", err)
	}
	return nil
}

// DeleteByIDs removes the given task instances in one batch call.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []string) error {
	if err := r.storer.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("task repository delete by ids: %w", err)
	}

	r.log.InfoContext(ctx, "tasks deleted", "count", len(ids))
	return nil
}
