package dto

import (
	"time"

	"protoparts/internal/domain/user"
)

// UserResponse is a user account.
type UserResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ServiceAccount bool      `json:"serviceAccount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromUser maps a user.
func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.DomainIdentity,
		Email:          u.Email,
		Name:           u.Name,
		ServiceAccount: u.ServiceAccount,
		CreatedAt:      u.CreatedAt,
	}
}

// CurrentUserResponse is the caller as seen by the API.
type CurrentUserResponse struct {
	UserResponse
	Permissions []string `json:"permissions"`
	IsAdmin     bool     `json:"isAdmin"`
}
