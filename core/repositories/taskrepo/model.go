package taskrepo

import "time"

// Task statuses. The scheduling core treats status as opaque and never writes
// it; only the explicit status operation does.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task is one concrete, dated unit of work. Tasks generated from one
// recurring request share a non-nil RecurrenceID.
type Task struct {
	TaskID       string     `db:"task_id" json:"task_id"`
	Title        string     `db:"title" json:"title"`
	Description  *string    `db:"description" json:"description,omitempty"`
	DueDate      time.Time  `db:"due_date" json:"due_date"`
	Status       string     `db:"status" json:"status"`
	Kind         string     `db:"kind" json:"kind"`
	PlantID      *string    `db:"plant_id" json:"plant_id,omitempty"`
	SpaceID      *string    `db:"space_id" json:"space_id,omitempty"`
	RecurrenceID *string    `db:"recurrence_id" json:"recurrence_id,omitempty"`
	CreatedAt    *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CreateTask contains the fields for creating a new task instance.
type CreateTask struct {
	Title        string
	Description  *string
	DueDate      time.Time
	Status       string
	Kind         string
	PlantID      *string
	SpaceID      *string
	RecurrenceID *string
}

// UpdateTask contains fields for updating an existing task. All fields are
// pointers to support partial updates; nil fields keep their stored values.
type UpdateTask struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
}

// QueryFilter narrows a task listing. Zero-value fields are ignored.
type QueryFilter struct {
	DueFrom      *time.Time
	DueTo        *time.Time
	Status       *string
	PlantID      *string
	SpaceID      *string
	RecurrenceID *string
}
