package user

import (
	"context"

	"protoparts/internal/domain"
)

// Repository defines the interface for User persistence.
type Repository interface {
	domain.Lister[User]

	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, u *User) error
}
