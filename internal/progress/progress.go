// Package progress derives per-project task metrics. Everything here is
// stateless and recomputed from the live task collection on each call.
package progress

import (
	"math"

	"github.com/teamhub-dev/teamhub/internal/models"
)

type Summary struct {
	Todo              int `json:"todo"`
	InProgress        int `json:"inprogress"`
	Done              int `json:"done"`
	CompletionPercent int `json:"completion_percent"`
}

// Aggregate counts the given tasks by status. An empty slice yields a
// zero summary with CompletionPercent 0.
func Aggregate(tasks []models.Task) Summary {
	var s Summary

	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusTodo:
			s.Todo++
		case models.TaskStatusInProgress:
			s.InProgress++
		case models.TaskStatusDone:
			s.Done++
		}
	}

	total := s.Todo + s.InProgress + s.Done
	if total > 0 {
		s.CompletionPercent = int(math.Round(float64(s.Done) / float64(total) * 100))
	}

	return s
}

// ForProject aggregates only the tasks belonging to the given project.
func ForProject(tasks []models.Task, projectID string) Summary {
	scoped := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID == projectID {
			scoped = append(scoped, t)
		}
	}
	return Aggregate(scoped)
}
