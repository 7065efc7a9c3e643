package store

import (
	"fmt"
	"strings"

	"github.com/teamhub-dev/teamhub/internal/models"
)

// Thread is a root message with its direct replies, in creation order.
type Thread struct {
	Root    models.Message   `json:"root"`
	Replies []models.Message `json:"replies"`
}

// PostMessage appends a chat message. An empty parentID starts a new
// thread; otherwise the parent must be a root message in the same
// project. Messages are never edited or deleted.
func (s *Store) PostMessage(projectID, authorID, content, parentID string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Message{}, fmt.Errorf("%w: message content is required", ErrValidation)
	}
	if s.projectIndexLocked(projectID) < 0 {
		return models.Message{}, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if s.userIndexLocked(authorID) < 0 {
		return models.Message{}, fmt.Errorf("%w: user %s", ErrNotFound, authorID)
	}

	if parentID != "" {
		mi := s.messageIndexLocked(parentID)
		if mi < 0 {
			return models.Message{}, fmt.Errorf("%w: message %s", ErrNotFound, parentID)
		}
		parent := s.messages[mi]
		if parent.ProjectID != projectID {
			return models.Message{}, fmt.Errorf("%w: parent message belongs to another project", ErrValidation)
		}
		if !parent.IsRoot() {
			return models.Message{}, fmt.Errorf("%w: replies cannot be nested", ErrValidation)
		}
	}

	prev := s.snapshotLocked()
	message := models.Message{
		ID:        s.newID(),
		ProjectID: projectID,
		AuthorID:  authorID,
		Content:   content,
		ParentID:  parentID,
		CreatedAt: s.now().UTC(),
	}
	s.messages = append(s.messages, message)

	if err := s.commitLocked(prev); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// ThreadsForProject groups a project's messages into threads. Roots
// appear in creation order, replies under their root likewise.
func (s *Store) ThreadsForProject(projectID string) ([]Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.projectIndexLocked(projectID) < 0 {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}

	threads := []Thread{}
	index := map[string]int{}

	for _, m := range s.messages {
		if m.ProjectID != projectID || !m.IsRoot() {
			continue
		}
		index[m.ID] = len(threads)
		threads = append(threads, Thread{Root: m, Replies: []models.Message{}})
	}

	for _, m := range s.messages {
		if m.ProjectID != projectID || m.IsRoot() {
			continue
		}
		if ti, ok := index[m.ParentID]; ok {
			threads[ti].Replies = append(threads[ti].Replies, m)
		}
	}

	return threads, nil
}
