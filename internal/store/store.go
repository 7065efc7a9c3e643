// Package store owns all entity state: normalized collections of users,
// projects, tasks, messages and notifications, plus the settings record
// and the current session pointer. Every mutation validates first, then
// applies, then persists the whole snapshot; a failed persist rolls the
// state back so no operation is ever partially applied.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teamhub-dev/teamhub/internal/models"
	"github.com/teamhub-dev/teamhub/internal/notify"
)

// Persister commits a snapshot after each successful mutation.
type Persister interface {
	Save(models.Snapshot) error
}

type Store struct {
	mu            sync.RWMutex
	users         []models.User
	projects      []models.Project
	tasks         []models.Task
	messages      []models.Message
	notifications []models.Notification
	settings      models.Settings
	currentUserID string

	persist Persister

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New builds a store from a loaded snapshot. persist may be nil, in
// which case mutations are not durable (used by tests).
func New(snap models.Snapshot, persist Persister) *Store {
	snap.Normalize()
	return &Store{
		users:         snap.Users,
		projects:      snap.Projects,
		tasks:         snap.Tasks,
		messages:      snap.Messages,
		notifications: snap.Notifications,
		settings:      *snap.Settings,
		currentUserID: snap.CurrentUserID,
		persist:       persist,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
	}
}

// Snapshot returns a deep-enough copy of the current state for
// persistence or inspection.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Snapshot {
	settings := s.settings
	return models.Snapshot{
		Users:         append([]models.User{}, s.users...),
		CurrentUserID: s.currentUserID,
		Projects:      append([]models.Project{}, s.projects...),
		Tasks:         append([]models.Task{}, s.tasks...),
		Messages:      append([]models.Message{}, s.messages...),
		Notifications: append([]models.Notification{}, s.notifications...),
		Settings:      &settings,
	}
}

func (s *Store) restoreLocked(snap models.Snapshot) {
	s.users = snap.Users
	s.projects = snap.Projects
	s.tasks = snap.Tasks
	s.messages = snap.Messages
	s.notifications = snap.Notifications
	s.settings = *snap.Settings
	s.currentUserID = snap.CurrentUserID
}

// commitLocked persists the current state. On failure the pre-mutation
// snapshot is restored and the error returned to the caller.
func (s *Store) commitLocked(prev models.Snapshot) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(s.snapshotLocked()); err != nil {
		s.restoreLocked(prev)
		return err
	}
	return nil
}

// notifyLocked materializes the notifications an event derives. The
// settings toggle suppresses creation entirely.
func (s *Store) notifyLocked(e notify.Event) {
	if !s.settings.NotificationsEnabled {
		return
	}
	for _, d := range notify.Derive(e) {
		s.notifications = append(s.notifications, models.Notification{
			ID:        s.newID(),
			UserID:    d.UserID,
			Text:      d.Text,
			CreatedAt: s.now().UTC(),
		})
	}
}

// NormalizeEmail trims and lower-cases an email for case-insensitive
// matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) userByEmailLocked(normalized string) *models.User {
	for i := range s.users {
		if s.users[i].Email == normalized {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) userIndexLocked(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) projectIndexLocked(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) taskIndexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) messageIndexLocked(id string) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) notificationIndexLocked(id string) int {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			return i
		}
	}
	return -1
}
