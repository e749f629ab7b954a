package prototypespackage

import (
	"context"
	"fmt"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/validation"
	"protoparts/internal/domain"
	"protoparts/internal/domain/audit"
	"protoparts/internal/domain/user"
)

// UserLookup resolves owners.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// Service provides business logic for prototypes packages.
type Service struct {
	*domain.LifecycleService[*PrototypesPackage]
	repo  Repository
	users UserLookup
}

// NewService creates a new prototypes package service.
func NewService(repo Repository, users UserLookup, cfg domain.LifecycleServiceConfig[*PrototypesPackage]) *Service {
	cfg.Repo = repo
	if cfg.EntityName == "" {
		cfg.EntityName = "prototypes package"
	}
	return &Service{
		LifecycleService: domain.NewLifecycleService(cfg),
		repo:             repo,
		users:            users,
	}
}

// List returns one page of packages.
func (s *Service) List(ctx context.Context, q ListQuery) (domain.ListResult[View], error) {
	if err := validation.Struct(q); err != nil {
		return domain.ListResult[View]{}, err
	}
	var result domain.ListResult[View]
	err := s.TxManager().ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.repo.List(ctx, q.Filter())
		return err
	})
	return result, err
}

// Get retrieves a package view by ID.
func (s *Service) Get(ctx context.Context, id int64) (View, error) {
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		return v, s.NormalizeGetErr(err, id)
	}
	return v, nil
}

// Create stores a new package.
func (s *Service) Create(ctx context.Context, actorID int64, cmd CreateCommand) (View, error) {
	if err := validation.Struct(cmd); err != nil {
		return View{}, err
	}

	var created *PrototypesPackage
	err := s.TxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, cmd.OwnerID); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("owner does not exist").
					WithDetail("field", "ownerId").
					WithDetail("value", cmd.OwnerID)
			}
			return err
		}

		p := &PrototypesPackage{
			Classification: cmd.Classification,
			PartTypeCode:   cmd.PartTypeCode,
			PartTypeTitle:  cmd.PartTypeTitle,
			Identifier:     cmd.Identifier,
			InitialCount:   cmd.InitialCount,
			ActualCount:    cmd.InitialCount,
			Comment:        cmd.Comment,
			OwnerID:        cmd.OwnerID,
		}
		p.Stamp(actorID, s.Now())
		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("create %s: %w", s.EntityName(), err)
		}
		created = p

		return s.Journal().Record(ctx, audit.Entry{
			EntityType: s.EntityName(),
			EntityID:   p.ID,
			Action:     audit.ActionCreate,
			UserID:     actorID,
			Changes: map[string]any{
				"package_identifier": p.Identifier,
				"initial_count":      p.InitialCount,
			},
		})
	})
	if err != nil {
		return View{}, err
	}
	s.RunAfterHooks(ctx, domain.AfterCreate, created)
	return s.Get(ctx, created.ID)
}
