package prototype

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

// Service provides business logic for prototypes.
type Service struct {
	*domain.LifecycleService[*Prototype]
	repo  Repository
	users UserLookup
}

// NewService creates a new prototype service.
func NewService(repo Repository, users UserLookup, cfg domain.LifecycleServiceConfig[*Prototype]) *Service {
	cfg.Repo = repo
	if cfg.EntityName == "" {
		cfg.EntityName = "prototype"
	}
	return &Service{
		LifecycleService: domain.NewLifecycleService(cfg),
		repo:             repo,
		users:            users,
	}
}

// List returns one page of prototypes.
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

// ListBySet lists the prototypes of one set; other filters still apply.
func (s *Service) ListBySet(ctx context.Context, setID int64, q ListQuery) (domain.ListResult[View], error) {
	q.PrototypeSetIDs = []int64{setID}
	return s.List(ctx, q)
}

// Get retrieves a prototype view by ID.
func (s *Service) Get(ctx context.Context, id int64) (View, error) {
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		return v, s.NormalizeGetErr(err, id)
	}
	return v, nil
}

// Update changes comment and owner of an active prototype.
func (s *Service) Update(ctx context.Context, actorID, id int64, cmd UpdateCommand) (View, error) {
	if err := validation.Struct(cmd); err != nil {
		return View{}, err
	}

	err := s.TxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return s.NormalizeGetErr(err, id)
		}
		if !p.IsActive() {
			return apperror.NewEntityScrapped(s.EntityName(), id)
		}

		changes := map[string]any{}
		if cmd.Comment != nil && *cmd.Comment != p.Comment {
			changes["comment"] = map[string]any{"old": p.Comment, "new": *cmd.Comment}
			p.Comment = *cmd.Comment
		}
		if cmd.OwnerID != nil && *cmd.OwnerID != p.OwnerID {
			if _, err := s.users.GetByID(ctx, *cmd.OwnerID); err != nil {
				if apperror.IsNotFound(err) {
					return apperror.NewValidation("owner does not exist").
						WithDetail("field", "ownerId").
						WithDetail("value", *cmd.OwnerID)
				}
				return err
			}
			changes["owner_id"] = map[string]any{"old": p.OwnerID, "new": *cmd.OwnerID}
			p.OwnerID = *cmd.OwnerID
		}
		if len(changes) == 0 {
			return nil
		}

		p.Touch(actorID, s.Now())
		if err := s.repo.Update(ctx, p); err != nil {
			return fmt.Errorf("update %s: %w", s.EntityName(), err)
		}
		return s.Journal().Record(ctx, audit.Entry{
			EntityType: s.EntityName(),
			EntityID:   id,
			Action:     audit.ActionUpdate,
			UserID:     actorID,
			Changes:    changes,
		})
	})
	if err != nil {
		return View{}, err
	}
	return s.Get(ctx, id)
}
