package taskrepobridge

import (
	"fmt"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
)

// Task is the wire representation of a task instance. Due dates travel as
// plain calendar dates; the canonical noon instant is a storage concern.
type Task struct {
	TaskID       string `json:"task_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	DueDate      string `json:"due_date"`
	Status       string `json:"status"`
	Kind         string `json:"kind"`
	PlantID      string `json:"plant_id,omitempty"`
	SpaceID      string `json:"space_id,omitempty"`
	RecurrenceID string `json:"recurrence_id,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// TargetInput references one plant or space the task applies to.
type TargetInput struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// CreateTaskInput is the request body for creating a task or task series.
type CreateTaskInput struct {
	Targets     []TargetInput `json:"targets"`
	Kind        string        `json:"kind"`
	KindLabel   string        `json:"kind_label"`
	OtherTitle  string        `json:"other_title"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	Recurring   bool          `json:"recurring"`
	Frequency   string        `json:"frequency"`
	EndDate     string        `json:"end_date"`
}

// Validate checks the fields the engine cannot: the wire-level date strings.
func (i CreateTaskInput) Validate() error {
	if i.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	return nil
}

// UpdateTaskInput is the request body for editing a task. Scope selects
// whether the edit touches one instance or the current-and-future sub-series.
type UpdateTaskInput struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date"`
	Scope        string  `json:"scope"`
	RecurrenceID *string `json:"recurrence_id"`
}

// UpdateStatusInput is the request body for toggling completion.
type UpdateStatusInput struct {
	Status string `json:"status"`
}

// Validate rejects statuses outside the two-state model.
func (i UpdateStatusInput) Validate() error {
	if i.Status != taskrepo.StatusPending && i.Status != taskrepo.StatusCompleted {
		return fmt.Errorf("status must be %q or %q", taskrepo.StatusPending, taskrepo.StatusCompleted)
	}
	return nil
}

// BulkDeleteInput is the request body for a multi-select delete.
type BulkDeleteInput struct {
	TaskIDs []string `json:"task_ids"`
}

// Validate rejects an empty id set.
func (i BulkDeleteInput) Validate() error {
	if len(i.TaskIDs) == 0 {
		return fmt.Errorf("task_ids must not be empty")
	}
	return nil
}

// SuccessResponse is the body returned by write operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
