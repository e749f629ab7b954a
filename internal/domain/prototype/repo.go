package prototype

import (
	"context"

	"protoparts/internal/domain"
)

// Repository defines the interface for Prototype persistence.
type Repository interface {
	domain.ViewRepository[View]
	domain.LifecycleRepository[*Prototype]

	Create(ctx context.Context, p *Prototype) error
	Update(ctx context.Context, p *Prototype) error
}
