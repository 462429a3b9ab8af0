package scheduling

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/sdk/dates"
)

// UpdateTask applies an edit to one instance or to the current-and-future
// sub-series of a recurring task.
//
// Under ScopeAllFuture a new due date is converted into a whole-day delta
// against the anchor's stored date, and every member of the future sub-series
// is shifted by that same delta from its own date, preserving the relative
// spacing of the series. Sibling writes are independent: a failure partway
// leaves the already-applied writes in place and is reported to the caller.
func (e *Engine) UpdateTask(ctx context.Context, taskID string, changes Changes, scope Scope, recurrenceID *string) error {
	switch scope {
	case ScopeSingle, "":
		return e.updateSingle(ctx, taskID, changes)
	case ScopeAllFuture:
		return e.updateAllFuture(ctx, taskID, changes, recurrenceID)
	default:
		return ErrUnknownScope
	}
}

func (e *Engine) updateSingle(ctx context.Context, taskID string, changes Changes) error {
	upd := taskrepo.UpdateTask{
		Title:       changes.Title,
		Description: changes.Description,
	}
	if changes.DueDate != nil {
		due := dates.NormalizeToNoon(*changes.DueDate)
		upd.DueDate = &due
	}

	if err := e.store.Update(ctx, taskID, upd); err != nil {
		return fmt.Errorf("update task %s: %w", taskID, err)
	}

	e.log.InfoContext(ctx, "task updated", "task_id", taskID, "scope", ScopeSingle)
	return nil
}

func (e *Engine) updateAllFuture(ctx context.Context, taskID string, changes Changes, recurrenceID *string) error {
	if recurrenceID == nil || *recurrenceID == "" {
		return ErrNoRecurrence
	}

	anchor, err := e.store.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("fetch anchor task %s: %w", taskID, err)
	}
	if anchor.RecurrenceID == nil {
		return ErrNoRecurrence
	}

	delta := 0
	if changes.DueDate != nil {
		delta = dates.DayDelta(anchor.DueDate, *changes.DueDate)
	}

	// The future sub-series: every sibling due on or after the anchor,
	// anchor included. Read completes before any write is dispatched.
	siblings, err := e.store.QueryByRecurrence(ctx, *recurrenceID, anchor.DueDate)
	if err != nil {
		return fmt.Errorf("fetch future sub-series %s: %w", *recurrenceID, err)
	}

	// The series already ended before the anchor's date. Nothing to move.
	if len(siblings) == 0 {
		e.log.InfoContext(ctx, "future sub-series empty", "recurrence_id", *recurrenceID)
		return nil
	}

	results := make([]mo.Result[taskrepo.Task], len(siblings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)

	for i, sibling := range siblings {
		g.Go(func() error {
			upd := taskrepo.UpdateTask{
				Title:       changes.Title,
				Description: changes.Description,
			}
			if changes.DueDate != nil {
				shifted := dates.NormalizeToNoon(dates.ShiftDays(sibling.DueDate, delta))
				upd.DueDate = &shifted
			}

			if err := e.store.Update(gctx, sibling.TaskID, upd); err != nil {
				results[i] = mo.Err[taskrepo.Task](fmt.Errorf("shift task %s: %w", sibling.TaskID, err))
				return err
			}

			results[i] = mo.Ok(sibling)
			return nil
		})
	}

	err = g.Wait()

	applied := 0
	for _, res := range results {
		if res.IsOk() {
			applied++
		}
	}

	if err != nil {
		// No rollback of the siblings that made it: each write is an
		// independent absolute update keyed by instance id, so retrying
		// the whole edit converges.
		e.log.ErrorContext(ctx, "future sub-series partially updated",
			"recurrence_id", *recurrenceID,
			"applied", applied,
			"total", len(siblings),
			"err", err)
		return fmt.Errorf("update future sub-series (%d of %d applied): %w", applied, len(siblings), err)
	}

	e.log.InfoContext(ctx, "future sub-series updated",
		"recurrence_id", *recurrenceID,
		"instances", applied,
		"delta_days", delta)

	return nil
}
