package store

import (
	"fmt"

	"github.com/teamhub-dev/teamhub/internal/models"
)

// SignIn records the given user as the active session.
func (s *Store) SignIn(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndexLocked(userID) < 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	prev := s.snapshotLocked()
	s.currentUserID = userID
	return s.commitLocked(prev)
}

// SignOut clears the active session.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == "" {
		return nil
	}

	prev := s.snapshotLocked()
	s.currentUserID = ""
	return s.commitLocked(prev)
}

// CurrentUser resolves the session pointer. The second return is false
// when nobody is signed in.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUserID == "" {
		return models.User{}, false
	}
	i := s.userIndexLocked(s.currentUserID)
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}
