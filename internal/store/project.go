package store

import (
	"fmt"
	"strings"

	"github.com/teamhub-dev/teamhub/internal/models"
)

// CreateProject creates a project owned by the given user, who becomes
// its sole initial member.
func (s *Store) CreateProject(ownerID, name string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if s.userIndexLocked(ownerID) < 0 {
		return models.Project{}, fmt.Errorf("%w: user %s", ErrNotFound, ownerID)
	}

	prev := s.snapshotLocked()
	project := models.Project{
		ID:        s.newID(),
		Name:      name,
		Members:   []string{ownerID},
		CreatedAt: s.now().UTC(),
	}
	s.projects = append(s.projects, project)

	if err := s.commitLocked(prev); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// AddMember adds a user to a project by email. If no user matches the
// normalized email, a placeholder user is synthesized with the input as
// both name and email and an empty credential. Adding an existing member
// again is a no-op, so the call is idempotent.
func (s *Store) AddMember(projectID, emailOrName string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input := strings.TrimSpace(emailOrName)
	if input == "" {
		return models.Project{}, fmt.Errorf("%w: member email is required", ErrValidation)
	}

	pi := s.projectIndexLocked(projectID)
	if pi < 0 {
		return models.Project{}, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}

	prev := s.snapshotLocked()

	normalized := NormalizeEmail(input)
	var userID string
	if existing := s.userByEmailLocked(normalized); existing != nil {
		userID = existing.ID
	} else {
		placeholder := models.User{
			ID:        s.newID(),
			Email:     normalized,
			Name:      input,
			CreatedAt: s.now().UTC(),
		}
		s.users = append(s.users, placeholder)
		userID = placeholder.ID
	}

	if s.projects[pi].HasMember(userID) {
		return s.projects[pi], nil
	}
	s.projects[pi].Members = append(s.projects[pi].Members, userID)

	if err := s.commitLocked(prev); err != nil {
		return models.Project{}, err
	}
	return s.projects[pi], nil
}

func (s *Store) GetProject(id string) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.projectIndexLocked(id)
	if i < 0 {
		return models.Project{}, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	return s.projects[i], nil
}

// ProjectsForUser lists the projects the user is a member of, in
// creation order.
func (s *Store) ProjectsForUser(userID string) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Project
	for _, p := range s.projects {
		if p.HasMember(userID) {
			out = append(out, p)
		}
	}
	return out
}
