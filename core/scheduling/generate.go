package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/sdk/dates"
	"github.com/cultivarhq/cultivar/sdk/validation"
)

// CreateTask expands one authored request into its concrete task instances
// and persists them as a single batch. A recurring request yields one
// instance per target per occurrence date, every instance tagged with the
// same freshly generated recurrence id. The engine performs no partial
// writes: if the batch fails, nothing was created.
func (e *Engine) CreateTask(ctx context.Context, req NewTaskRequest) error {
	title, err := deriveTitle(req)
	if err != nil {
		return err
	}

	if err := validateTargets(req.Targets); err != nil {
		return err
	}

	if req.StartDate.IsZero() {
		return ErrMissingStartDate
	}

	dueDates, recurrenceID := e.expandDates(req)

	creates := make([]taskrepo.CreateTask, 0, len(dueDates)*len(req.Targets))
	for _, due := range dueDates {
		for _, target := range req.Targets {
			ct := taskrepo.CreateTask{
				Title:        title,
				Description:  validation.StringPtrIfNotEmpty(req.Description),
				DueDate:      due,
				Status:       taskrepo.StatusPending,
				Kind:         req.Kind,
				RecurrenceID: recurrenceID,
			}

			switch target.Kind {
			case TargetPlant:
				ct.PlantID = validation.StringPtr(target.ID)
			case TargetSpace:
				ct.SpaceID = validation.StringPtr(target.ID)
			}

			creates = append(creates, ct)
		}
	}

	if _, err := e.store.CreateBatch(ctx, creates); err != nil {
		return fmt.Errorf("create task series: %w", err)
	}

	e.log.InfoContext(ctx, "task series created",
		"instances", len(creates),
		"dates", len(dueDates),
		"targets", len(req.Targets),
		"recurring", recurrenceID != nil)

	return nil
}

// expandDates resolves the occurrence dates for a request, every one pinned
// to the canonical noon instant. A recurring request without a usable end
// date degrades to the single-date behavior rather than failing.
func (e *Engine) expandDates(req NewTaskRequest) ([]time.Time, *string) {
	start := dates.NormalizeToNoon(req.StartDate)

	if !req.Recurring || req.EndDate.IsZero() || dates.DayDelta(req.StartDate, req.EndDate) < 0 {
		return []time.Time{start}, nil
	}

	end := dates.NormalizeToNoon(req.EndDate)
	expanded := dates.IterateInclusive(start, end, req.Frequency, dates.MaxOccurrences)
	if len(expanded) == 0 {
		return []time.Time{start}, nil
	}

	recurrenceID := uuid.NewString()
	return expanded, &recurrenceID
}

// deriveTitle resolves the instance title from the task kind: the kind's own
// label normally, the author's free text for the generic kind.
func deriveTitle(req NewTaskRequest) (string, error) {
	title := req.KindLabel
	if req.Kind == KindOther {
		title = req.OtherTitle
	}

	if title == "" {
		return "", ErrMissingTitle
	}

	return title, nil
}

func validateTargets(targets []TargetRef) error {
	if len(targets) == 0 {
		return ErrNoTargets
	}

	for _, target := range targets {
		if target.ID == "" {
			return ErrInvalidTarget
		}
		if target.Kind != TargetPlant && target.Kind != TargetSpace {
			return ErrInvalidTarget
		}
	}

	return nil
}
