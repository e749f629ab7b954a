package dto

import (
	"protoparts/internal/core/entity"
	"protoparts/internal/domain/partcode"
	"protoparts/internal/domain/prototype"
)

// PrototypeResponse is a prototype with owner, audit trail and composed part code.
type PrototypeResponse struct {
	AuditResponse
	PrototypeSetID   int64           `json:"prototypeSetId"`
	PartTypeCode     string          `json:"partTypeCode"`
	PartTypeTitle    string          `json:"partTypeTitle"`
	Index            int             `json:"index"`
	Comment          string          `json:"comment"`
	Owner            entity.Identity `json:"owner"`
	PartCode         string          `json:"partCode"`
	PartCodeSegments partcode.Value  `json:"partCodeSegments"`
}

// FromPrototype maps a prototype view.
func FromPrototype(v prototype.View) PrototypeResponse {
	code := v.PartCode()
	return PrototypeResponse{
		AuditResponse:    FromAudit(v.Audit, v.AuditTrail),
		PrototypeSetID:   v.PrototypeSetID,
		PartTypeCode:     v.PartTypeCode,
		PartTypeTitle:    v.PartTypeTitle,
		Index:            v.Index,
		Comment:          v.Comment,
		Owner:            v.Owner,
		PartCode:         code.String(),
		PartCodeSegments: code,
	}
}
