// Package notify is the policy layer deciding which notifications a
// mutation produces. It is pure: the store materializes the drafts it
// returns into Notification records.
package notify

import (
	"fmt"
	"time"

	"github.com/teamhub-dev/teamhub/internal/models"
)

type EventKind string

const (
	EventTaskAssigned      EventKind = "task_assigned"
	EventTaskStatusChanged EventKind = "task_status_changed"
)

type Event struct {
	Kind        EventKind
	Task        models.Task
	ProjectName string
	// NewStatus is set for EventTaskStatusChanged.
	NewStatus models.TaskStatus
}

// Draft is a notification before the store assigns it an id and
// timestamp.
type Draft struct {
	UserID string
	Text   string
}

// Derive returns the notifications an event produces. A task without an
// assignee produces none: the assignee is the only designated recipient.
func Derive(e Event) []Draft {
	if e.Task.AssigneeID == "" {
		return nil
	}

	switch e.Kind {
	case EventTaskAssigned:
		return []Draft{{
			UserID: e.Task.AssigneeID,
			Text:   fmt.Sprintf("You were assigned %q in %s", e.Task.Title, e.ProjectName),
		}}
	case EventTaskStatusChanged:
		return []Draft{{
			UserID: e.Task.AssigneeID,
			Text:   fmt.Sprintf("%q moved to %s", e.Task.Title, e.NewStatus.Label()),
		}}
	}

	return nil
}

// DueSoonWindow is how far ahead a due date counts as due soon.
const DueSoonWindow = 48 * time.Hour

// DueSoon reports whether a task's due date falls within the window.
// It is a derived flag, recomputed on every read and never persisted.
// Done tasks are never due soon.
func DueSoon(task models.Task, now time.Time) bool {
	if task.DueDate == nil || task.Status == models.TaskStatusDone {
		return false
	}
	due := *task.DueDate
	return due.After(now) && due.Sub(now) <= DueSoonWindow
}
