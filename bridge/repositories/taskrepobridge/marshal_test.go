package taskrepobridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/sdk/dates"
)

func TestMarshalToBridge(t *testing.T) {
	description := "use half-strength nutrients"
	plantID := "plant-1"
	recurrenceID := "rec-1"
	created := time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)

	task := taskrepo.Task{
		TaskID:       "task-1",
		Title:        "Feed",
		Description:  &description,
		DueDate:      time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		Status:       taskrepo.StatusPending,
		Kind:         "feeding",
		PlantID:      &plantID,
		RecurrenceID: &recurrenceID,
		CreatedAt:    &created,
	}

	out := MarshalToBridge(task)

	assert.Equal(t, "task-1", out.TaskID)
	assert.Equal(t, "Feed", out.Title)
	assert.Equal(t, description, out.Description)
	assert.Equal(t, "2024-03-05", out.DueDate, "due dates travel as calendar dates")
	assert.Equal(t, "plant-1", out.PlantID)
	assert.Empty(t, out.SpaceID)
	assert.Equal(t, "rec-1", out.RecurrenceID)
	assert.Equal(t, "2024-02-01T08:30:00Z", out.CreatedAt)
}

func TestMarshalToBridgeEmptyOptionals(t *testing.T) {
	task := taskrepo.Task{
		TaskID:  "task-1",
		Title:   "Repot",
		DueDate: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		Status:  taskrepo.StatusPending,
		Kind:    "transplant",
	}

	out := MarshalToBridge(task)

	assert.Empty(t, out.Description)
	assert.Empty(t, out.PlantID)
	assert.Empty(t, out.RecurrenceID)
	assert.Empty(t, out.CreatedAt)
}

func TestMarshalCreateToScheduling(t *testing.T) {
	input := CreateTaskInput{
		Targets: []TargetInput{
			{Kind: "plant", ID: "plant-1"},
			{Kind: "space", ID: "space-1"},
		},
		Kind:        "irrigation",
		KindLabel:   "Water",
		Description: "2L per plant",
		StartDate:   "2024-03-01",
		Recurring:   true,
		Frequency:   "weekly",
		EndDate:     "2024-03-22T12:00:00",
	}

	req, err := MarshalCreateToScheduling(input)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), req.StartDate)
	assert.Equal(t, 22, req.EndDate.Day())
	assert.Equal(t, dates.Weekly, req.Frequency)
	require.Len(t, req.Targets, 2)
	assert.Equal(t, scheduling.TargetPlant, req.Targets[0].Kind)
	assert.Equal(t, scheduling.TargetSpace, req.Targets[1].Kind)
}

func TestMarshalCreateToSchedulingUnknownFrequency(t *testing.T) {
	input := CreateTaskInput{
		Kind:      "irrigation",
		KindLabel: "Water",
		StartDate: "2024-03-01",
		Frequency: "fortnightly-ish",
	}

	req, err := MarshalCreateToScheduling(input)
	require.NoError(t, err)
	assert.Equal(t, dates.Daily, req.Frequency, "unknown frequencies fall back to daily")
}

func TestMarshalCreateToSchedulingBadDates(t *testing.T) {
	_, err := MarshalCreateToScheduling(CreateTaskInput{StartDate: "next tuesday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")

	_, err = MarshalCreateToScheduling(CreateTaskInput{StartDate: "2024-03-01", EndDate: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestMarshalUpdateToChanges(t *testing.T) {
	title := "Water and inspect"
	due := "2024-03-10"

	changes, err := MarshalUpdateToChanges(UpdateTaskInput{Title: &title, DueDate: &due})
	require.NoError(t, err)

	require.NotNil(t, changes.Title)
	assert.Equal(t, title, *changes.Title)
	require.NotNil(t, changes.DueDate)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *changes.DueDate)
	assert.Nil(t, changes.Description)
}

func TestMarshalUpdateToChangesBadDate(t *testing.T) {
	due := "10/03/2024"
	_, err := MarshalUpdateToChanges(UpdateTaskInput{DueDate: &due})
	require.Error(t, err)
}

func TestInputValidation(t *testing.T) {
	assert.Error(t, CreateTaskInput{}.Validate())
	assert.NoError(t, CreateTaskInput{StartDate: "2024-03-01"}.Validate())

	assert.Error(t, UpdateStatusInput{Status: "done"}.Validate())
	assert.NoError(t, UpdateStatusInput{Status: taskrepo.StatusCompleted}.Validate())

	assert.Error(t, BulkDeleteInput{}.Validate())
	assert.NoError(t, BulkDeleteInput{TaskIDs: []string{"task-1"}}.Validate())
}
