package prototypeset

import (
	"context"
	"fmt"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/validation"
	"protoparts/internal/domain"
	"protoparts/internal/domain/audit"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/domain/user"
)

// UserLookup resolves owners.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// Service provides business logic for prototype sets.
type Service struct {
	*domain.LifecycleService[*PrototypeSet]
	repo        Repository
	prototypes  PrototypeWriter
	identifiers IdentifierAllocator
	users       UserLookup
}

// Deps are the collaborators of the set service.
type Deps struct {
	Repo        Repository
	Prototypes  PrototypeWriter
	Identifiers IdentifierAllocator
	Users       UserLookup
}

// NewService creates a new prototype set service.
func NewService(deps Deps, cfg domain.LifecycleServiceConfig[*PrototypeSet]) *Service {
	cfg.Repo = deps.Repo
	if cfg.EntityName == "" {
		cfg.EntityName = "prototype set"
	}
	return &Service{
		LifecycleService: domain.NewLifecycleService(cfg),
		repo:             deps.Repo,
		prototypes:       deps.Prototypes,
		identifiers:      deps.Identifiers,
		users:            deps.Users,
	}
}

// List returns one page of prototype sets.
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

// Get retrieves a prototype set view by ID.
func (s *Service) Get(ctx context.Context, id int64) (View, error) {
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		return v, s.NormalizeGetErr(err, id)
	}
	return v, nil
}

// Create allocates a set identifier and stores the set with its prototypes,
// indexed from 1 in the order of the groups.
func (s *Service) Create(ctx context.Context, actorID int64, cmd CreateCommand) (View, error) {
	if err := validation.Struct(cmd); err != nil {
		return View{}, err
	}

	total := 0
	for _, g := range cmd.Prototypes {
		total += g.Count
	}
	if total > prototype.MaxIndex {
		return View{}, apperror.NewValidation("too many prototypes in one set").
			WithDetail("field", "prototypes").
			WithDetail("max", prototype.MaxIndex)
	}

	var created *PrototypeSet
	err := s.TxManager().RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkOwners(ctx, cmd.Prototypes); err != nil {
			return err
		}

		identifier, err := s.identifiers.NextSetIdentifier(ctx, cmd.Classification)
		if err != nil {
			return err
		}

		now := s.Now()
		set := &PrototypeSet{Classification: cmd.Classification, SetIdentifier: identifier}
		set.Stamp(actorID, now)
		if err := s.repo.Create(ctx, set); err != nil {
			return fmt.Errorf("create %s: %w", s.EntityName(), err)
		}
		created = set

		index := 0
		for _, g := range cmd.Prototypes {
			for i := 0; i < g.Count; i++ {
				index++
				p := &prototype.Prototype{
					PrototypeSetID: set.ID,
					PartTypeCode:   g.PartTypeCode,
					PartTypeTitle:  g.PartTypeTitle,
					Index:          index,
					Comment:        g.Comment,
					OwnerID:        g.OwnerID,
				}
				p.Stamp(actorID, now)
				if err := p.Validate(ctx); err != nil {
					return err
				}
				if err := s.prototypes.Create(ctx, p); err != nil {
					return fmt.Errorf("create prototype %d: %w", index, err)
				}
			}
		}

		return s.Journal().Record(ctx, audit.Entry{
			EntityType: s.EntityName(),
			EntityID:   set.ID,
			Action:     audit.ActionCreate,
			UserID:     actorID,
			Changes: map[string]any{
				"set_identifier": identifier,
				"prototypes":     index,
			},
		})
	})
	if err != nil {
		return View{}, err
	}
	s.RunAfterHooks(ctx, domain.AfterCreate, created)
	return s.Get(ctx, created.ID)
}

func (s *Service) checkOwners(ctx context.Context, groups []PrototypeGroup) error {
	seen := make(map[int64]bool, len(groups))
	for _, g := range groups {
		if seen[g.OwnerID] {
			continue
		}
		seen[g.OwnerID] = true
		if _, err := s.users.GetByID(ctx, g.OwnerID); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("owner does not exist").
					WithDetail("field", "ownerId").
					WithDetail("value", g.OwnerID)
			}
			return err
		}
	}
	return nil
}
