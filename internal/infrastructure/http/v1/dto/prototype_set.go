package dto

import (
	"protoparts/internal/domain"
	"protoparts/internal/domain/prototypeset"
)

// PrototypeSetResponse is a prototype set with its audit trail.
type PrototypeSetResponse struct {
	AuditResponse
	domain.Classification
	SetIdentifier string `json:"setIdentifier"`
}

// FromPrototypeSet maps a set view.
func FromPrototypeSet(v prototypeset.View) PrototypeSetResponse {
	return PrototypeSetResponse{
		AuditResponse:  FromAudit(v.Audit, v.AuditTrail),
		Classification: v.Classification,
		SetIdentifier:  v.SetIdentifier,
	}
}
