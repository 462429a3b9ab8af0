package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
)

// DeleteTask removes exactly one task instance. Series membership of any
// remaining siblings is unaffected.
func (e *Engine) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return ErrNoIDs
	}

	if err := e.store.DeleteByIDs(ctx, []string{taskID}); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}

	e.log.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}

// DeleteTasks removes an arbitrary id set in one batch call, as issued by a
// multi-select action.
func (e *Engine) DeleteTasks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoIDs
	}

	if err := e.store.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}

	return nil
}

// DeleteTaskSeries removes either the anchor instance alone or every instance
// sharing the recurrence id.
func (e *Engine) DeleteTaskSeries(ctx context.Context, recurrenceID, anchorTaskID string, scope DeleteScope) error {
	if recurrenceID == "" {
		return ErrNoRecurrence
	}

	switch scope {
	case DeleteScopeThis:
		return e.deleteSeriesAnchor(ctx, recurrenceID, anchorTaskID)
	case DeleteScopeAll:
		return e.deleteSeriesAll(ctx, recurrenceID)
	default:
		return ErrUnknownDeleteMode
	}
}

// deleteSeriesAnchor removes only the anchor. The existence check makes a
// stale reference surface as not-found instead of a silent success.
func (e *Engine) deleteSeriesAnchor(ctx context.Context, recurrenceID, anchorTaskID string) error {
	if _, err := e.store.GetByID(ctx, anchorTaskID); err != nil {
		return fmt.Errorf("fetch anchor task %s: %w", anchorTaskID, err)
	}

	if err := e.store.DeleteByIDs(ctx, []string{anchorTaskID}); err != nil {
		return fmt.Errorf("delete series anchor %s: %w", anchorTaskID, err)
	}

	e.log.InfoContext(ctx, "series instance deleted",
		"recurrence_id", recurrenceID,
		"task_id", anchorTaskID)

	return nil
}

func (e *Engine) deleteSeriesAll(ctx context.Context, recurrenceID string) error {
	members, err := e.store.QueryByRecurrence(ctx, recurrenceID, time.Time{})
	if err != nil {
		return fmt.Errorf("fetch series %s: %w", recurrenceID, err)
	}
	if len(members) == 0 {
		return fmt.Errorf("series %s: %w", recurrenceID, taskrepo.ErrNotFound)
	}

	ids := make([]string, len(members))
	for i, member := range members {
		ids[i] = member.TaskID
	}

	if err := e.store.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete series %s: %w", recurrenceID, err)
	}

	e.log.InfoContext(ctx, "series deleted",
		"recurrence_id", recurrenceID,
		"instances", len(ids))

	return nil
}
