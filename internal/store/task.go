package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teamhub-dev/teamhub/internal/models"
	"github.com/teamhub-dev/teamhub/internal/notify"
)

// validateAssigneeLocked checks an assignee id resolves to a real user.
// A non-member assignee is allowed but logged, since the project board
// still renders them.
func (s *Store) validateAssigneeLocked(assigneeID string, project models.Project) error {
	if assigneeID == "" {
		return nil
	}
	if s.userIndexLocked(assigneeID) < 0 {
		return fmt.Errorf("%w: assignee %s", ErrNotFound, assigneeID)
	}
	if !project.HasMember(assigneeID) {
		logrus.WithFields(logrus.Fields{
			"assignee_id": assigneeID,
			"project_id":  project.ID,
		}).Warn("task assignee is not a project member")
	}
	return nil
}

// CreateTask creates a task in the todo status. Assigning it on creation
// produces an assignment notification for the assignee.
func (s *Store) CreateTask(projectID, title, description, assigneeID string, dueDate *time.Time) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("%w: task title is required", ErrValidation)
	}

	pi := s.projectIndexLocked(projectID)
	if pi < 0 {
		return models.Task{}, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	project := s.projects[pi]

	if err := s.validateAssigneeLocked(assigneeID, project); err != nil {
		return models.Task{}, err
	}

	prev := s.snapshotLocked()
	task := models.Task{
		ID:          s.newID(),
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(description),
		AssigneeID:  assigneeID,
		DueDate:     dueDate,
		Status:      models.TaskStatusTodo,
		CreatedAt:   s.now().UTC(),
	}
	s.tasks = append(s.tasks, task)

	s.notifyLocked(notify.Event{
		Kind:        notify.EventTaskAssigned,
		Task:        task,
		ProjectName: project.Name,
	})

	if err := s.commitLocked(prev); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces a task's editable fields. Reassigning to a new
// non-empty assignee produces an assignment notification.
func (s *Store) UpdateTask(taskID, title, description, assigneeID string, dueDate *time.Time) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("%w: task title is required", ErrValidation)
	}

	ti := s.taskIndexLocked(taskID)
	if ti < 0 {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	pi := s.projectIndexLocked(s.tasks[ti].ProjectID)
	project := s.projects[pi]

	if err := s.validateAssigneeLocked(assigneeID, project); err != nil {
		return models.Task{}, err
	}

	prev := s.snapshotLocked()
	reassigned := assigneeID != "" && assigneeID != s.tasks[ti].AssigneeID

	s.tasks[ti].Title = title
	s.tasks[ti].Description = strings.TrimSpace(description)
	s.tasks[ti].AssigneeID = assigneeID
	s.tasks[ti].DueDate = dueDate

	if reassigned {
		s.notifyLocked(notify.Event{
			Kind:        notify.EventTaskAssigned,
			Task:        s.tasks[ti],
			ProjectName: project.Name,
		})
	}

	if err := s.commitLocked(prev); err != nil {
		return models.Task{}, err
	}
	return s.tasks[ti], nil
}

// SetTaskStatus replaces a task's status. The assignee, if any, gets a
// status-change notification. Setting the current status again is a
// no-op.
func (s *Store) SetTaskStatus(taskID string, status models.TaskStatus) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	ti := s.taskIndexLocked(taskID)
	if ti < 0 {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}
	if s.tasks[ti].Status == status {
		return s.tasks[ti], nil
	}

	prev := s.snapshotLocked()
	s.tasks[ti].Status = status

	s.notifyLocked(notify.Event{
		Kind:      notify.EventTaskStatusChanged,
		Task:      s.tasks[ti],
		NewStatus: status,
	})

	if err := s.commitLocked(prev); err != nil {
		return models.Task{}, err
	}
	return s.tasks[ti], nil
}

// DeleteTask removes a task. There is no cascade: nothing else
// references tasks.
func (s *Store) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ti := s.taskIndexLocked(taskID)
	if ti < 0 {
		return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	prev := s.snapshotLocked()
	s.tasks = append(s.tasks[:ti], s.tasks[ti+1:]...)

	return s.commitLocked(prev)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// TasksForProject lists a project's tasks in creation order.
func (s *Store) TasksForProject(projectID string) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.projectIndexLocked(projectID) < 0 {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}

	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}
