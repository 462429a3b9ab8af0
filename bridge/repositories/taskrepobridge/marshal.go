package taskrepobridge

import (
	"fmt"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/sdk/dates"
	"github.com/cultivarhq/cultivar/sdk/validation"
)

// MarshalToBridge converts a core task to its wire representation.
func MarshalToBridge(task taskrepo.Task) Task {
	return Task{
		TaskID:       task.TaskID,
		Title:        task.Title,
		Description:  validation.GetStringOrEmpty(task.Description),
		DueDate:      dates.FormatDate(task.DueDate),
		Status:       task.Status,
		Kind:         task.Kind,
		PlantID:      validation.GetStringOrEmpty(task.PlantID),
		SpaceID:      validation.GetStringOrEmpty(task.SpaceID),
		RecurrenceID: validation.GetStringOrEmpty(task.RecurrenceID),
		CreatedAt:    validation.FormatTimePtrToString(task.CreatedAt),
		UpdatedAt:    validation.FormatTimePtrToString(task.UpdatedAt),
	}
}

// MarshalListToBridge converts a list of core tasks to wire representations.
func MarshalListToBridge(tasks []taskrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToScheduling converts the create input to an engine request,
// parsing the wire-level date strings.
func MarshalCreateToScheduling(input CreateTaskInput) (scheduling.NewTaskRequest, error) {
	start, err := validation.ParseFlexibleDate(input.StartDate)
	if err != nil {
		return scheduling.NewTaskRequest{}, fmt.Errorf("start_date: %w", err)
	}

	req := scheduling.NewTaskRequest{
		Kind:        input.Kind,
		KindLabel:   input.KindLabel,
		OtherTitle:  input.OtherTitle,
		Description: input.Description,
		StartDate:   start,
		Recurring:   input.Recurring,
		Frequency:   dates.ParseFrequency(input.Frequency),
	}

	if input.EndDate != "" {
		end, err := validation.ParseFlexibleDate(input.EndDate)
		if err != nil {
			return scheduling.NewTaskRequest{}, fmt.Errorf("end_date: %w", err)
		}
		req.EndDate = end
	}

	req.Targets = make([]scheduling.TargetRef, len(input.Targets))
	for i, target := range input.Targets {
		req.Targets[i] = scheduling.TargetRef{
			Kind: scheduling.TargetKind(target.Kind),
			ID:   target.ID,
		}
	}

	return req, nil
}

// MarshalUpdateToChanges converts the update input to an engine edit.
func MarshalUpdateToChanges(input UpdateTaskInput) (scheduling.Changes, error) {
	changes := scheduling.Changes{
		Title:       input.Title,
		Description: input.Description,
	}

	if input.DueDate != nil {
		due, err := validation.ParseFlexibleDate(*input.DueDate)
		if err != nil {
			return scheduling.Changes{}, fmt.Errorf("due_date: %w", err)
		}
		changes.DueDate = &due
	}

	return changes, nil
}
