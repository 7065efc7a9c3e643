package store

import (
	"fmt"

	"github.com/teamhub-dev/teamhub/internal/models"
)

// MarkNotificationRead flips the read flag. It only moves false to true;
// marking an already-read notification again is a no-op.
func (s *Store) MarkNotificationRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.notificationIndexLocked(id)
	if i < 0 {
		return models.Notification{}, fmt.Errorf("%w: notification %s", ErrNotFound, id)
	}
	if s.notifications[i].Read {
		return s.notifications[i], nil
	}

	prev := s.snapshotLocked()
	s.notifications[i].Read = true

	if err := s.commitLocked(prev); err != nil {
		return models.Notification{}, err
	}
	return s.notifications[i], nil
}

// NotificationsForUser lists a user's notifications, newest first.
func (s *Store) NotificationsForUser(userID string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userIndexLocked(userID) < 0 {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	out := []models.Notification{}
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].UserID == userID {
			out = append(out, s.notifications[i])
		}
	}
	return out, nil
}
