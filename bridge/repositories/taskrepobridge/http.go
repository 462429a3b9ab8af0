package taskrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/cultivarhq/cultivar/bridge/scaffolding/errs"
	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/infrastructure/web"
	"github.com/cultivarhq/cultivar/sdk/logger"
	"github.com/cultivarhq/cultivar/sdk/validation"
)

// Config holds configuration for the task bridge.
type Config struct {
	Log        *logger.Logger
	Engine     *scheduling.Engine
	Repository *taskrepo.Repository
}

// AddHTTPRoutes registers all HTTP routes for tasks under the given prefix.
func AddHTTPRoutes(prefix string, app *web.Handler, cfg Config) {
	b := newBridge(cfg.Log, cfg.Engine, cfg.Repository)

	app.Handle(http.MethodPost, prefix+"/tasks", b.httpCreate)
	app.Handle(http.MethodGet, prefix+"/tasks", b.httpList)
	app.Handle(http.MethodGet, prefix+"/tasks/{task_id}", b.httpGetByID)
	app.Handle(http.MethodPut, prefix+"/tasks/{task_id}", b.httpUpdate)
	app.Handle(http.MethodPut, prefix+"/tasks/{task_id}/status", b.httpSetStatus)
	app.Handle(http.MethodDelete, prefix+"/tasks/{task_id}", b.httpDelete)
	app.Handle(http.MethodPost, prefix+"/tasks/bulk-delete", b.httpBulkDelete)
	app.Handle(http.MethodDelete, prefix+"/tasks/series/{recurrence_id}", b.httpDeleteSeries)
}

// errResponse maps core errors onto the bridge error codes.
func errResponse(err error) web.Encoder {
	switch {
	case scheduling.IsValidation(err):
		return errs.New(errs.InvalidArgument, err)
	case errors.Is(err, taskrepo.ErrNotFound):
		return errs.New(errs.NotFound, err)
	default:
		return errs.New(errs.Internal, err)
	}
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	req, err := MarshalCreateToScheduling(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.engine.CreateTask(ctx, req); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponseWithStatus(SuccessResponse{Success: true}, http.StatusCreated)
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseQueryFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, err := b.repo.Query(ctx, filter)
	if err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	task, err := b.repo.GetByID(ctx, taskID)
	if err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	changes, err := MarshalUpdateToChanges(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.engine.UpdateTask(ctx, taskID, changes, scheduling.Scope(input.Scope), input.RecurrenceID); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(SuccessResponse{Success: true})
}

func (b *bridge) httpSetStatus(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	var input UpdateStatusInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.repo.SetStatus(ctx, taskID, input.Status); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(SuccessResponse{Success: true})
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	taskID := web.Param(r, "task_id")

	if err := b.engine.DeleteTask(ctx, taskID); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(SuccessResponse{Success: true})
}

func (b *bridge) httpBulkDelete(ctx context.Context, r *http.Request) web.Encoder {
	var input BulkDeleteInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.engine.DeleteTasks(ctx, input.TaskIDs); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(SuccessResponse{Success: true})
}

func (b *bridge) httpDeleteSeries(ctx context.Context, r *http.Request) web.Encoder {
	recurrenceID := web.Param(r, "recurrence_id")
	anchorTaskID := web.QueryParam(r, "anchor_task_id")

	scope := scheduling.DeleteScope(web.QueryParam(r, "scope"))
	if scope == "" {
		scope = scheduling.DeleteScopeAll
	}

	if err := b.engine.DeleteTaskSeries(ctx, recurrenceID, anchorTaskID, scope); err != nil {
		return errResponse(err)
	}

	return web.NewJSONResponse(SuccessResponse{Success: true})
}

// parseQueryFilter builds the repository filter from the listing query
// parameters. Absent parameters leave their filter fields nil.
func parseQueryFilter(r *http.Request) (taskrepo.QueryFilter, error) {
	var filter taskrepo.QueryFilter

	if v := web.QueryParam(r, "due_from"); v != "" {
		t, err := validation.ParseFlexibleDate(v)
		if err != nil {
			return taskrepo.QueryFilter{}, err
		}
		filter.DueFrom = &t
	}
	if v := web.QueryParam(r, "due_to"); v != "" {
		t, err := validation.ParseFlexibleDate(v)
		if err != nil {
			return taskrepo.QueryFilter{}, err
		}
		filter.DueTo = &t
	}
	if v := web.QueryParam(r, "status"); v != "" {
		filter.Status = &v
	}
	if v := web.QueryParam(r, "plant_id"); v != "" {
		filter.PlantID = &v
	}
	if v := web.QueryParam(r, "space_id"); v != "" {
		filter.SpaceID = &v
	}
	if v := web.QueryParam(r, "recurrence_id"); v != "" {
		filter.RecurrenceID = &v
	}

	return filter, nil
}
