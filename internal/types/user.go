package types

import "github.com/teamhub-dev/teamhub/internal/models"

// UserResponse is the public shape of a user; the stored credential
// never leaves the process.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
