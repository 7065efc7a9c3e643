package models

import "time"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// Credential is empty for users synthesized by adding a member by
	// email before that person ever signs up.
	Credential string    `json:"credential"`
	CreatedAt  time.Time `json:"createdAt"`
}
