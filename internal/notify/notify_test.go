package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhub-dev/teamhub/internal/models"
)

func TestDeriveAssignment(t *testing.T) {
	drafts := Derive(Event{
		Kind:        EventTaskAssigned,
		Task:        models.Task{Title: "Ship it", AssigneeID: "u1"},
		ProjectName: "Launch",
	})

	require.Len(t, drafts, 1)
	assert.Equal(t, "u1", drafts[0].UserID)
	assert.Contains(t, drafts[0].Text, "Ship it")
	assert.Contains(t, drafts[0].Text, "Launch")
}

func TestDeriveStatusChange(t *testing.T) {
	drafts := Derive(Event{
		Kind:      EventTaskStatusChanged,
		Task:      models.Task{Title: "Ship it", AssigneeID: "u1"},
		NewStatus: models.TaskStatusInProgress,
	})

	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Text, "In Progress")
}

func TestDeriveNoAssignee(t *testing.T) {
	drafts := Derive(Event{
		Kind:        EventTaskAssigned,
		Task:        models.Task{Title: "Ship it"},
		ProjectName: "Launch",
	})
	assert.Empty(t, drafts)
}

func TestDueSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	within := now.Add(47 * time.Hour)
	beyond := now.Add(49 * time.Hour)
	past := now.Add(-time.Hour)

	t.Run("inside the window", func(t *testing.T) {
		task := models.Task{Status: models.TaskStatusTodo, DueDate: &within}
		assert.True(t, DueSoon(task, now))
	})

	t.Run("beyond the window", func(t *testing.T) {
		task := models.Task{Status: models.TaskStatusTodo, DueDate: &beyond}
		assert.False(t, DueSoon(task, now))
	})

	t.Run("already past due", func(t *testing.T) {
		task := models.Task{Status: models.TaskStatusTodo, DueDate: &past}
		assert.False(t, DueSoon(task, now))
	})

	t.Run("done tasks never due soon", func(t *testing.T) {
		task := models.Task{Status: models.TaskStatusDone, DueDate: &within}
		assert.False(t, DueSoon(task, now))
	})

	t.Run("no due date", func(t *testing.T) {
		task := models.Task{Status: models.TaskStatusTodo}
		assert.False(t, DueSoon(task, now))
	})
}
