// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"
	"time"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
	"protoparts/internal/core/tx"
	"protoparts/internal/domain/audit"
	"protoparts/pkg/logger"
)

// LifecycleService implements scrap and reactivate for any audited entity.
// Entity services embed it.
type LifecycleService[T entity.Auditable] struct {
	repo      LifecycleRepository[T]
	txManager tx.Manager
	journal   audit.Journal
	hooks     *HookRegistry[T]
	now       func() time.Time

	// entityName for error messages and the journal
	entityName string
}

// LifecycleServiceConfig configures the lifecycle service.
type LifecycleServiceConfig[T entity.Auditable] struct {
	Repo       LifecycleRepository[T]
	TxManager  tx.Manager
	Journal    audit.Journal // Optional
	EntityName string
	Clock      func() time.Time // Optional, defaults to time.Now
}

// NewLifecycleService creates a new lifecycle service.
func NewLifecycleService[T entity.Auditable](cfg LifecycleServiceConfig[T]) *LifecycleService[T] {
	s := &LifecycleService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		journal:    cfg.Journal,
		hooks:      NewHookRegistry[T](),
		now:        cfg.Clock,
		entityName: cfg.EntityName,
	}
	if s.journal == nil {
		s.journal = audit.Discard{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Hooks returns the hook registry for external registration.
func (s *LifecycleService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName is the name used in errors and journal entries.
func (s *LifecycleService[T]) EntityName() string {
	return s.entityName
}

// Now returns the service clock in UTC.
func (s *LifecycleService[T]) Now() time.Time {
	return s.now().UTC()
}

// TxManager exposes the transaction manager to embedding services.
func (s *LifecycleService[T]) TxManager() tx.Manager {
	return s.txManager
}

// Journal exposes the audit journal to embedding services.
func (s *LifecycleService[T]) Journal() audit.Journal {
	return s.journal
}

// NormalizeGetErr maps repository errors to API errors for this entity.
func (s *LifecycleService[T]) NormalizeGetErr(err error, id int64) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, id)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", id)
}

// Scrap soft-deletes the entity. Scrapping an already scrapped entity is a no-op.
func (s *LifecycleService[T]) Scrap(ctx context.Context, actorID, id int64) error {
	return s.transition(ctx, actorID, id, audit.ActionScrap)
}

// Reactivate reverses Scrap. Reactivating an active entity is a no-op.
func (s *LifecycleService[T]) Reactivate(ctx context.Context, actorID, id int64) error {
	return s.transition(ctx, actorID, id, audit.ActionReactivate)
}

func (s *LifecycleService[T]) transition(ctx context.Context, actorID, id int64, action audit.Action) error {
	var (
		changed bool
		target  T
	)

	before, after := BeforeScrap, AfterScrap
	if action == audit.ActionReactivate {
		before, after = BeforeReactivate, AfterReactivate
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		ent, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return s.NormalizeGetErr(err, id)
		}
		target = ent

		a := ent.GetAudit()
		wasDeletedAt := a.DeletedAt

		if err := s.hooks.Run(ctx, before, ent); err != nil {
			return err
		}

		now := s.Now()
		if action == audit.ActionScrap {
			changed = a.Scrap(actorID, now)
		} else {
			changed = a.Reactivate(actorID, now)
		}
		if !changed {
			return nil
		}

		if err := s.repo.SaveAudit(ctx, a); err != nil {
			return fmt.Errorf("%s %s: %w", action, s.entityName, err)
		}

		return s.journal.Record(ctx, audit.Entry{
			EntityType: s.entityName,
			EntityID:   id,
			Action:     action,
			UserID:     actorID,
			Changes: map[string]any{
				"deleted_at": map[string]any{"old": wasDeletedAt, "new": a.DeletedAt},
			},
		})
	})
	if err != nil {
		return err
	}

	if changed {
		s.RunAfterHooks(ctx, after, target)
	}
	return nil
}

// RunAfterHooks runs the hooks of a committed change. A failing hook is
// logged but does not fail the command.
func (s *LifecycleService[T]) RunAfterHooks(ctx context.Context, event HookEvent, entity T) {
	if err := s.hooks.Run(ctx, event, entity); err != nil {
		logger.Warn(ctx, "after hook failed",
			"entity", s.entityName,
			"event", string(event),
			"error", err,
		)
	}
}
