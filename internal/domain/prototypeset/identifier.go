package prototypeset

import (
	"context"
	"errors"

	"protoparts/internal/core/apperror"
	"protoparts/internal/domain"
	"protoparts/pkg/numerator"
)

// NumeratorAllocator allocates set identifiers from the sequence of the
// set's outlet, product group and evidence year.
type NumeratorAllocator struct {
	numerator *numerator.Service
}

// NewNumeratorAllocator wraps a numerator service.
func NewNumeratorAllocator(n *numerator.Service) *NumeratorAllocator {
	return &NumeratorAllocator{numerator: n}
}

// NextSetIdentifier implements IdentifierAllocator.
func (a *NumeratorAllocator) NextSetIdentifier(ctx context.Context, c domain.Classification) (string, error) {
	cfg := numerator.SetIdentifierConfig(c.OutletCode, c.ProductGroupCode, c.EvidenceYearCode)
	id, err := a.numerator.Next(ctx, cfg)
	if errors.Is(err, numerator.ErrExhausted) {
		return "", apperror.NewBusinessRule(apperror.CodeSequenceExhausted, "no set identifiers left for this classification").
			WithDetail("sequence", cfg.Key)
	}
	return id, err
}
