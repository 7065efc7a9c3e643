package models

import "time"

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Members is an ordered set of user ids; the creator is always the
	// first entry.
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Project) HasMember(userID string) bool {
	for _, id := range p.Members {
		if id == userID {
			return true
		}
	}
	return false
}
