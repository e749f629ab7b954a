package user

import (
	"context"
	"fmt"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/tx"
	"protoparts/internal/core/validation"
	"protoparts/internal/domain"
)

const entityName = "user"

// Service provides business logic for users.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new user service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// List returns one page of users.
func (s *Service) List(ctx context.Context, q ListQuery) (domain.ListResult[User], error) {
	if err := validation.Struct(q); err != nil {
		return domain.ListResult[User]{}, err
	}
	var result domain.ListResult[User]
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.repo.List(ctx, q.Filter())
		return err
	})
	return result, err
}

// Get retrieves a user by ID.
func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return u, normalizeGetErr(err, id)
	}
	return u, nil
}

// GetByUsername retrieves a user by domain identity.
func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return u, normalizeGetErr(err, username)
	}
	return u, nil
}

// Create registers a new user.
func (s *Service) Create(ctx context.Context, u *User) error {
	if err := u.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByUsername(ctx, u.DomainIdentity); err == nil {
			return apperror.NewDuplicate(entityName, "username", u.DomainIdentity)
		} else if !apperror.IsNotFound(err) {
			return err
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return fmt.Errorf("create %s: %w", entityName, err)
		}
		return nil
	})
}

func normalizeGetErr(err error, key any) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(entityName, key)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", entityName)
}
