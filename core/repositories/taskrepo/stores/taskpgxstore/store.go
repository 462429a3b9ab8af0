// Package taskpgxstore implements the taskrepo.Storer interface against
// Postgres using pgx.
package taskpgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

const taskColumns = `task_id, title, description, due_date, status, kind,
		plant_id, space_id, recurrence_id, created_at, updated_at`

// CreateBatch inserts every instance inside one transaction so a failed batch
// leaves no rows behind.
func (s *Store) CreateBatch(ctx context.Context, tasks []taskrepo.CreateTask) ([]taskrepo.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	query := `INSERT INTO tasks
			(task_id, title, description, due_date, status, kind, plant_id, space_id, recurrence_id)
		VALUES
			(@task_id, @title, @description, @due_date, @status, @kind, @plant_id, @space_id, @recurrence_id)`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	records := make([]taskrepo.Task, 0, len(tasks))

	for _, ct := range tasks {
		id := uuid.NewString()
		batch.Queue(query, pgx.NamedArgs{
			"task_id":       id,
			"title":         ct.Title,
			"description":   ct.Description,
			"due_date":      ct.DueDate,
			"status":        ct.Status,
			"kind":          ct.Kind,
			"plant_id":      ct.PlantID,
			"space_id":      ct.SpaceID,
			"recurrence_id": ct.RecurrenceID,
		})

		records = append(records, taskrepo.Task{
			TaskID:       id,
			Title:        ct.Title,
			Description:  ct.Description,
			DueDate:      ct.DueDate,
			Status:       ct.Status,
			Kind:         ct.Kind,
			PlantID:      ct.PlantID,
			SpaceID:      ct.SpaceID,
			RecurrenceID: ct.RecurrenceID,
		})
	}

	br := tx.SendBatch(ctx, batch)
	for range tasks {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, postgresdb.HandlePgError(err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

func (s *Store) GetByID(ctx context.Context, taskID string) (taskrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return taskrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[taskrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taskrepo.Task{}, fmt.Errorf("task %s: %w", taskID, taskrepo.ErrNotFound)
		}
		return taskrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// QueryByRecurrence returns the members of a series due on or after dueFloor,
// ordered by due date. A zero dueFloor means the whole series.
func (s *Store) QueryByRecurrence(ctx context.Context, recurrenceID string, dueFloor time.Time) ([]taskrepo.Task, error) {
	buf := bytes.NewBufferString(`SELECT ` + taskColumns + `
		FROM tasks
		WHERE recurrence_id = @recurrence_id`)

	args := pgx.NamedArgs{
		"recurrence_id": recurrenceID,
	}

	if !dueFloor.IsZero() {
		buf.WriteString(` AND due_date >= @due_floor`)
		args["due_floor"] = dueFloor
	}

	buf.WriteString(` ORDER BY due_date ASC`)

	rows, err := s.pool.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[taskrepo.Task])
}

func (s *Store) Query(ctx context.Context, filter taskrepo.QueryFilter) ([]taskrepo.Task, error) {
	buf := bytes.NewBufferString(`SELECT ` + taskColumns + `
		FROM tasks
		WHERE 1=1`)

	args := pgx.NamedArgs{}
	applyFilter(buf, args, filter)

	buf.WriteString(` ORDER BY due_date ASC, task_id ASC`)

	rows, err := s.pool.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[taskrepo.Task])
}

// Update rewrites the non-nil fields of upd on one row. Supplying no fields is
// a no-op success.
func (s *Store) Update(ctx context.Context, taskID string, upd taskrepo.UpdateTask) error {
	buf := bytes.NewBufferString(`UPDATE tasks SET updated_at = NOW()`)
	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	if upd.Title != nil {
		buf.WriteString(`, title = @title`)
		args["title"] = *upd.Title
	}
	if upd.Description != nil {
		buf.WriteString(`, description = @description`)
		args["description"] = *upd.Description
	}
	if upd.DueDate != nil {
		buf.WriteString(`, due_date = @due_date`)
		args["due_date"] = *upd.DueDate
	}
	if upd.Status != nil {
		buf.WriteString(`, status = @status`)
		args["status"] = *upd.Status
	}

	buf.WriteString(` WHERE task_id = @task_id`)

	tag, err := s.pool.Exec(ctx, buf.String(), args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, taskrepo.ErrNotFound)
	}

	return nil
}

func (s *Store) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM tasks WHERE task_id = ANY(@task_ids)`

	args := pgx.NamedArgs{
		"task_ids": ids,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

func applyFilter(buf *bytes.Buffer, args pgx.NamedArgs, filter taskrepo.QueryFilter) {
	if filter.DueFrom != nil {
		buf.WriteString(` AND due_date >= @due_from`)
		args["due_from"] = *filter.DueFrom
	}
	if filter.DueTo != nil {
		buf.WriteString(` AND due_date <= @due_to`)
		args["due_to"] = *filter.DueTo
	}
	if filter.Status != nil {
		buf.WriteString(` AND status = @status`)
		args["status"] = *filter.Status
	}
	if filter.PlantID != nil {
		buf.WriteString(` AND plant_id = @plant_id`)
		args["plant_id"] = *filter.PlantID
	}
	if filter.SpaceID != nil {
		buf.WriteString(` AND space_id = @space_id`)
		args["space_id"] = *filter.SpaceID
	}
	if filter.RecurrenceID != nil {
		buf.WriteString(` AND recurrence_id = @recurrence_id`)
		args["recurrence_id"] = *filter.RecurrenceID
	}
}
