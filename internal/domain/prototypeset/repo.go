package prototypeset

import (
	"context"

	"protoparts/internal/domain"
	"protoparts/internal/domain/prototype"
)

// Repository defines the interface for PrototypeSet persistence.
type Repository interface {
	domain.ViewRepository[View]
	domain.LifecycleRepository[*PrototypeSet]

	Create(ctx context.Context, s *PrototypeSet) error
}

// PrototypeWriter stores the prototypes created with a set.
type PrototypeWriter interface {
	Create(ctx context.Context, p *prototype.Prototype) error
}

// IdentifierAllocator hands out set identifiers.
type IdentifierAllocator interface {
	NextSetIdentifier(ctx context.Context, c domain.Classification) (string, error)
}
