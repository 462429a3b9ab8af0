// Package scheduling implements the recurring task engine: expanding one
// authored request into a dated series of task instances, mutating a series
// under single-instance or this-and-all-future scope, and terminating a
// series partially or wholly.
//
// The engine is invoked synchronously per caller action. It owns no
// background execution; every operation runs to completion or failure within
// the request that triggered it. Durable state lives behind the TaskStore
// gateway.
package scheduling

import (
	"context"
	"time"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

// maxConcurrentWrites bounds the fan-out of independent per-instance writes
// during a future sub-series mutation.
const maxConcurrentWrites = 8

// TaskStore is the persistence gateway the engine works against.
// *taskrepo.Repository satisfies it.
type TaskStore interface {
	CreateBatch(ctx context.Context, tasks []taskrepo.CreateTask) ([]taskrepo.Task, error)
	GetByID(ctx context.Context, taskID string) (taskrepo.Task, error)
	QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]taskrepo.Task, error)
	Update(ctx context.Context, taskID string, upd taskrepo.UpdateTask) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

// Engine coordinates series generation, mutation and termination.
type Engine struct {
	log   *logger.Logger
	store TaskStore
}

// NewEngine creates a scheduling engine over the given task store.
func NewEngine(log *logger.Logger, store TaskStore) *Engine {
	return &Engine{
		log:   log,
		store: store,
	}
}
