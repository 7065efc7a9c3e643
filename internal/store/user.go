package store

import (
	"fmt"
	"strings"

	"github.com/teamhub-dev/teamhub/internal/models"
)

// CreateUser registers a new user. The email is normalized before the
// uniqueness check, so addresses differing only in case collide.
func (s *Store) CreateUser(email, name, credential string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return models.User{}, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if name == "" {
		return models.User{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if s.userByEmailLocked(email) != nil {
		return models.User{}, ErrDuplicateEmail
	}

	prev := s.snapshotLocked()
	user := models.User{
		ID:         s.newID(),
		Email:      email,
		Name:       name,
		Credential: credential,
		CreatedAt:  s.now().UTC(),
	}
	s.users = append(s.users, user)

	if err := s.commitLocked(prev); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate performs the local-store credential check: an exact
// comparison against the stored credential. On success the session
// pointer is set to the user.
func (s *Store) Authenticate(email, credential string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.userByEmailLocked(NormalizeEmail(email))
	if user == nil {
		return models.User{}, fmt.Errorf("%w: no user with that email", ErrNotFound)
	}
	if user.Credential != credential {
		return models.User{}, ErrBadCredential
	}

	prev := s.snapshotLocked()
	s.currentUserID = user.ID

	if err := s.commitLocked(prev); err != nil {
		return models.User{}, err
	}
	return *user, nil
}

func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.userIndexLocked(id)
	if i < 0 {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return s.users[i], nil
}

// UserByEmail looks up a user by normalized email.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.userByEmailLocked(NormalizeEmail(email)); u != nil {
		return *u, true
	}
	return models.User{}, false
}

func (s *Store) UpdateUserProfile(userID, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	i := s.userIndexLocked(userID)
	if i < 0 {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	prev := s.snapshotLocked()
	s.users[i].Name = name

	if err := s.commitLocked(prev); err != nil {
		return models.User{}, err
	}
	return s.users[i], nil
}
