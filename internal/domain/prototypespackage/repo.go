package prototypespackage

import (
	"context"

	"protoparts/internal/domain"
)

// Repository defines the interface for PrototypesPackage persistence.
type Repository interface {
	domain.ViewRepository[View]
	domain.LifecycleRepository[*PrototypesPackage]

	Create(ctx context.Context, p *PrototypesPackage) error
}
