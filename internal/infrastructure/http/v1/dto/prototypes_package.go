package dto

import (
	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
	"protoparts/internal/domain/prototypespackage"
)

// PrototypesPackageResponse is a package with owner and audit trail.
type PrototypesPackageResponse struct {
	AuditResponse
	domain.Classification
	PartTypeCode  string          `json:"partTypeCode"`
	PartTypeTitle string          `json:"partTypeTitle"`
	Identifier    string          `json:"packageIdentifier"`
	InitialCount  int             `json:"initialCount"`
	ActualCount   int             `json:"actualCount"`
	Comment       string          `json:"comment"`
	Owner         entity.Identity `json:"owner"`
}

// FromPrototypesPackage maps a package view.
func FromPrototypesPackage(v prototypespackage.View) PrototypesPackageResponse {
	return PrototypesPackageResponse{
		AuditResponse:  FromAudit(v.Audit, v.AuditTrail),
		Classification: v.Classification,
		PartTypeCode:   v.PartTypeCode,
		PartTypeTitle:  v.PartTypeTitle,
		Identifier:     v.Identifier,
		InitialCount:   v.InitialCount,
		ActualCount:    v.ActualCount,
		Comment:        v.Comment,
		Owner:          v.Owner,
	}
}
