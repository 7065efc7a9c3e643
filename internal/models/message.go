package models

import "time"

type Message struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	// ParentID is empty for a thread root. Replies reference a root
	// message in the same project; nesting is single-level.
	ParentID  string    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) IsRoot() bool {
	return m.ParentID == ""
}
