// Package user provides the users referenced by every audit field.
package user

import (
	"context"
	"strings"
	"time"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
)

var _ entity.Validatable = (*User)(nil)

// User is an account of a person or a service.
type User struct {
	ID             int64     `db:"id" json:"id"`
	DomainIdentity string    `db:"domain_identity" json:"username"`
	Email          string    `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	ServiceAccount bool      `db:"service_account" json:"serviceAccount"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// NewUser creates a user with normalized identity fields.
func NewUser(domainIdentity, email, name string, serviceAccount bool) *User {
	return &User{
		DomainIdentity: strings.TrimSpace(domainIdentity),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		Name:           strings.TrimSpace(name),
		ServiceAccount: serviceAccount,
		CreatedAt:      time.Now().UTC(),
	}
}

// Validate implements entity.Validatable interface.
func (u *User) Validate(ctx context.Context) error {
	if u.DomainIdentity == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("a valid email is required").WithDetail("field", "email")
	}
	if u.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	return nil
}
